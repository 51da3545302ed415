package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conorfennell/pianopace/internal/config"
	"github.com/conorfennell/pianopace/internal/contentsync"
	"github.com/conorfennell/pianopace/internal/curriculum"
	"github.com/conorfennell/pianopace/internal/logger"
	"github.com/conorfennell/pianopace/internal/storage"
	"github.com/conorfennell/pianopace/internal/tracker"
)

// app carries what the commands share once configuration is loaded.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *curriculum.Catalog
	db      *storage.DB
	now     func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:   "pianopace",
		Short: "Self-paced 48-week piano course tracker",
		Long: `pianopace tracks learners through a 48-week piano curriculum of
15-minute daily lessons, compares their progress with a linear schedule
and suggests catch-up plans when they fall behind.

Configuration is read from defaults, an optional YAML file (--config),
PIANOPACE_* environment variables and flags, later sources winning.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { a.close() },
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(a),
		newLearnerCmd(a),
		newStatusCmd(a),
		newCompleteCmd(a),
		newLessonCmd(a),
	)
	return root
}

// setup loads configuration, the logger and the curriculum. Storage is
// opened on demand by the commands that need it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	a.log = log

	catalog, err := contentsync.Load(cmd.Context(), log, curriculum.Builtin(), contentsync.Options{
		Dir:      cfg.Curriculum.Dir,
		GitURL:   cfg.Curriculum.Git,
		CacheDir: cfg.Curriculum.CacheDir,
	})
	if err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}
	a.catalog = catalog
	return nil
}

// tracker opens the database and wires a tracker over it.
func (a *app) tracker() (*tracker.Tracker, error) {
	if a.db == nil {
		db, err := storage.Open(a.cfg.DB)
		if err != nil {
			return nil, err
		}
		a.db = db
		a.log.Debug("database opened", "path", a.cfg.DB)
	}
	return tracker.New(tracker.Deps{
		Store:   a.db,
		Catalog: a.catalog,
		Pace:    a.cfg.PaceParams(),
		Clock:   a.now,
		Log:     a.log,
	}), nil
}

func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn("close database", "error", err)
		}
		a.db = nil
	}
	if a.log != nil {
		a.log.Sync()
	}
}
