package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conorfennell/pianopace/internal/curriculum"
	"github.com/conorfennell/pianopace/internal/domain"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

const dateLayout = "2006-01-02"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// DB represents a wrapper around the SQL database connection.
type DB struct {
	conn *sql.DB
}

// Open creates a new database connection and ensures the schema is up to date.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite allows one writer; a single connection also keeps the
	// foreign_keys pragma in effect for every statement.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Execute the schema to create tables if they don't exist.
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping checks the connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// CreateLearner inserts a learner together with fresh progress at week 1, day 1.
func (db *DB) CreateLearner(ctx context.Context, l domain.Learner) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO learners (id, name, start_date, target_end_date, days_per_week, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		l.ID.String(),
		l.Name,
		l.StartDate.Format(dateLayout),
		l.TargetEndDate.Format(dateLayout),
		l.DaysPerWeek,
		l.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert learner %s: %w", l.ID, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO progress (learner_id, current_week, current_day, days_completed, updated_at)
		VALUES (?, ?, ?, 0, ?)
	`, l.ID.String(), curriculum.Start.Week, curriculum.Start.Day, l.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert progress for learner %s: %w", l.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit learner %s: %w", l.ID, err)
	}
	return nil
}

// GetLearner retrieves a learner by ID.
func (db *DB) GetLearner(ctx context.Context, id uuid.UUID) (*domain.Learner, error) {
	row := db.conn.QueryRowContext(ctx, `
		SELECT id, name, start_date, target_end_date, days_per_week, created_at
		FROM learners WHERE id = ?
	`, id.String())

	l, err := scanLearner(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("learner %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find learner %s: %w", id, err)
	}
	return l, nil
}

// ListLearners returns every learner, oldest first.
func (db *DB) ListLearners(ctx context.Context) ([]domain.Learner, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, name, start_date, target_end_date, days_per_week, created_at
		FROM learners ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list learners: %w", err)
	}
	defer rows.Close()

	var learners []domain.Learner
	for rows.Next() {
		l, err := scanLearner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan learner row: %w", err)
		}
		learners = append(learners, *l)
	}
	return learners, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLearner(s scanner) (*domain.Learner, error) {
	var (
		l             domain.Learner
		id            string
		start, target string
	)
	if err := s.Scan(&id, &l.Name, &start, &target, &l.DaysPerWeek, &l.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	if l.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("bad learner id %q: %w", id, err)
	}
	if l.StartDate, err = time.Parse(dateLayout, start); err != nil {
		return nil, fmt.Errorf("bad start date %q: %w", start, err)
	}
	if l.TargetEndDate, err = time.Parse(dateLayout, target); err != nil {
		return nil, fmt.Errorf("bad target date %q: %w", target, err)
	}
	return &l, nil
}

// GetProgress retrieves a learner's progress.
func (db *DB) GetProgress(ctx context.Context, learnerID uuid.UUID) (*domain.Progress, error) {
	return getProgress(ctx, db.conn, learnerID)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getProgress(ctx context.Context, q querier, learnerID uuid.UUID) (*domain.Progress, error) {
	p := domain.Progress{LearnerID: learnerID}
	err := q.QueryRowContext(ctx, `
		SELECT current_week, current_day, days_completed, updated_at
		FROM progress WHERE learner_id = ?
	`, learnerID.String()).Scan(&p.Position.Week, &p.Position.Day, &p.DaysCompleted, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("progress for learner %s: %w", learnerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find progress for learner %s: %w", learnerID, err)
	}
	return &p, nil
}

// UpdateProgress reads a learner's progress, applies fn and writes the result
// back, all in one transaction. If fn returns an error nothing is written and
// the error is returned unchanged.
func (db *DB) UpdateProgress(ctx context.Context, learnerID uuid.UUID, fn func(domain.Progress) (domain.Progress, error)) (*domain.Progress, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := getProgress(ctx, tx, learnerID)
	if err != nil {
		return nil, err
	}
	next, err := fn(*current)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE progress
		SET current_week = ?, current_day = ?, days_completed = ?, updated_at = ?
		WHERE learner_id = ?
	`,
		next.Position.Week,
		next.Position.Day,
		next.DaysCompleted,
		next.UpdatedAt.UTC(),
		learnerID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update progress for learner %s: %w", learnerID, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit progress for learner %s: %w", learnerID, err)
	}
	next.LearnerID = learnerID
	return &next, nil
}

// InsertPracticeLog records a practice session.
func (db *DB) InsertPracticeLog(ctx context.Context, pl domain.PracticeLog) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO practice_logs (id, learner_id, practiced_on, minutes, week, day, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		pl.ID.String(),
		pl.LearnerID.String(),
		pl.PracticedOn.Format(dateLayout),
		pl.Minutes,
		pl.Position.Week,
		pl.Position.Day,
		pl.Notes,
		pl.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert practice log %s: %w", pl.ID, err)
	}
	return nil
}

// ListPracticeLogs returns up to limit practice logs for a learner, newest first.
func (db *DB) ListPracticeLogs(ctx context.Context, learnerID uuid.UUID, limit int) ([]domain.PracticeLog, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, practiced_on, minutes, week, day, notes, created_at
		FROM practice_logs WHERE learner_id = ?
		ORDER BY practiced_on DESC, created_at DESC
		LIMIT ?
	`, learnerID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get practice logs for learner %s: %w", learnerID, err)
	}
	defer rows.Close()

	var logs []domain.PracticeLog
	for rows.Next() {
		pl := domain.PracticeLog{LearnerID: learnerID}
		var id, on string
		if err := rows.Scan(&id, &on, &pl.Minutes, &pl.Position.Week, &pl.Position.Day, &pl.Notes, &pl.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan practice log row for learner %s: %w", learnerID, err)
		}
		if pl.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("bad practice log id %q: %w", id, err)
		}
		if pl.PracticedOn, err = time.Parse(dateLayout, on); err != nil {
			return nil, fmt.Errorf("bad practice date %q: %w", on, err)
		}
		logs = append(logs, pl)
	}
	return logs, rows.Err()
}

// PracticeDates returns the distinct days a learner practiced on, newest first.
func (db *DB) PracticeDates(ctx context.Context, learnerID uuid.UUID) ([]time.Time, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT DISTINCT practiced_on
		FROM practice_logs WHERE learner_id = ?
		ORDER BY practiced_on DESC
	`, learnerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get practice dates for learner %s: %w", learnerID, err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var on string
		if err := rows.Scan(&on); err != nil {
			return nil, fmt.Errorf("failed to scan practice date for learner %s: %w", learnerID, err)
		}
		d, err := time.Parse(dateLayout, on)
		if err != nil {
			return nil, fmt.Errorf("bad practice date %q: %w", on, err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
