package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/conorfennell/pianopace/internal/domain"
	"github.com/conorfennell/pianopace/internal/pace"
	"github.com/conorfennell/pianopace/internal/tracker"
)

func newLearnerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learner",
		Short: "Manage learners",
	}
	cmd.AddCommand(newLearnerAddCmd(a), newLearnerListCmd(a))
	return cmd
}

func newLearnerAddCmd(a *app) *cobra.Command {
	var in domain.NewLearner
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Enrol a new learner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.StartDate == "" {
				in.StartDate = a.now().Format(domain.DateLayout)
			}
			t, err := a.tracker()
			if err != nil {
				return err
			}
			l, err := t.Enroll(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enrolled %s: %s\n", l.Name, l.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "learner's name")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "start date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&in.TargetEndDate, "target", "", "target end date, YYYY-MM-DD")
	cmd.Flags().Float64Var(&in.DaysPerWeek, "days-per-week", 5, "planned practice days per week")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newLearnerListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List learners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.tracker()
			if err != nil {
				return err
			}
			learners, err := t.Learners(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSTART\tTARGET")
			for _, l := range learners {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.ID, l.Name,
					l.StartDate.Format(domain.DateLayout), l.TargetEndDate.Format(domain.DateLayout))
			}
			return tw.Flush()
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <learner-id>",
		Short: "Show a learner's pace and catch-up plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid learner id %q: %w", args[0], err)
			}
			t, err := a.tracker()
			if err != nil {
				return err
			}
			s, err := t.Status(cmd.Context(), id)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func printStatus(w io.Writer, s *tracker.Status) {
	fmt.Fprintf(w, "%s: week %d, day %d (phase %d, %s)\n",
		s.Learner.Name, s.Progress.Position.Week, s.Progress.Position.Day, s.Phase, s.PhaseName)
	fmt.Fprintf(w, "Completed %d of %d days (%d%%), expected %d, buffer %+d: %s\n",
		s.Pace.DaysCompleted, pace.TotalCurriculumDays, s.Pace.PercentComplete,
		s.Pace.ExpectedDays, s.Pace.BufferDays, s.Pace.Status)
	fmt.Fprintln(w, s.Pace.Message)
	if s.Lesson != nil {
		fmt.Fprintf(w, "Today's lesson: %s (%s)\n", s.Lesson.Title, s.Lesson.Type)
	}
	if s.Streak > 0 {
		fmt.Fprintf(w, "Practice streak: %d days\n", s.Streak)
	}
	if len(s.CatchUpPlan) > 0 {
		fmt.Fprintln(w, "Catch-up plan:")
		for _, step := range s.CatchUpPlan {
			fmt.Fprintf(w, "  - %s\n", step)
		}
		rp := s.RequiredPace
		fmt.Fprintf(w, "Required pace: %.1f days per week", rp.DaysPerWeek)
		if !rp.Achievable {
			fmt.Fprint(w, " (not achievable)")
		}
		fmt.Fprintln(w)
	}
}

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <learner-id>",
		Short: "Mark the learner's current day as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid learner id %q: %w", args[0], err)
			}
			t, err := a.tracker()
			if err != nil {
				return err
			}
			p, err := t.CompleteDay(cmd.Context(), id)
			if err != nil {
				return err
			}
			if p.Finished() {
				fmt.Fprintln(cmd.OutOrStdout(), "Curriculum complete. Congratulations!")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done. Next up: %s (%d of %d days completed)\n",
				p.Position, p.DaysCompleted, pace.TotalCurriculumDays)
			return nil
		},
	}
}
