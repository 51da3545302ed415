package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conorfennell/pianopace/internal/curriculum"
)

func newLessonCmd(a *app) *cobra.Command {
	var week, day int
	cmd := &cobra.Command{
		Use:   "lesson",
		Short: "Print a curriculum day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, ok := a.catalog.Week(week)
			if !ok {
				return fmt.Errorf("week %d not found", week)
			}
			d, ok := a.catalog.Day(week, day)
			if !ok {
				return fmt.Errorf("week %d has no day %d", week, day)
			}
			printLesson(cmd.OutOrStdout(), w, d)
			return nil
		},
	}
	cmd.Flags().IntVar(&week, "week", 1, "curriculum week (1-48)")
	cmd.Flags().IntVar(&day, "day", 1, "day of the week (1-7)")
	return cmd
}

func printLesson(out io.Writer, w curriculum.Week, d curriculum.Day) {
	phase := w.Phase()
	fmt.Fprintf(out, "Week %d: %s (phase %d, %s)\n", w.Week, w.Title, phase, curriculum.PhaseName(phase))
	fmt.Fprintf(out, "Day %d: %s [%s]\n\n", d.Day, d.Title, d.Type)

	fmt.Fprintln(out, "Objectives:")
	for _, o := range d.Objectives {
		fmt.Fprintf(out, "  - %s\n", o)
	}
	if d.Content != "" {
		fmt.Fprintf(out, "\n%s\n", strings.TrimSpace(d.Content))
	}
	for _, e := range d.Exercises {
		fmt.Fprintf(out, "\n%s (%d BPM)\n", e.Title, e.TargetTempo)
		if e.Notation != "" {
			fmt.Fprintf(out, "  %s\n", e.Notation)
		}
		for _, tip := range e.Tips {
			fmt.Fprintf(out, "  tip: %s\n", tip)
		}
	}
	if len(d.Checkpoint) > 0 {
		fmt.Fprintln(out, "\nCheckpoint:")
		for _, c := range d.Checkpoint {
			fmt.Fprintf(out, "  [ ] %s\n", c)
		}
	}
}
