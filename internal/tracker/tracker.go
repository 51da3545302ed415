package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conorfennell/pianopace/internal/curriculum"
	"github.com/conorfennell/pianopace/internal/domain"
	"github.com/conorfennell/pianopace/internal/logger"
	"github.com/conorfennell/pianopace/internal/pace"
	"github.com/conorfennell/pianopace/internal/tutor"
)

// ErrCurriculumComplete is returned when completing a day after the last one.
var ErrCurriculumComplete = errors.New("curriculum already complete")

// Store is the persistence the tracker needs. storage.DB implements it.
type Store interface {
	CreateLearner(ctx context.Context, l domain.Learner) error
	GetLearner(ctx context.Context, id uuid.UUID) (*domain.Learner, error)
	ListLearners(ctx context.Context) ([]domain.Learner, error)
	GetProgress(ctx context.Context, learnerID uuid.UUID) (*domain.Progress, error)
	UpdateProgress(ctx context.Context, learnerID uuid.UUID, fn func(domain.Progress) (domain.Progress, error)) (*domain.Progress, error)
	InsertPracticeLog(ctx context.Context, pl domain.PracticeLog) error
	ListPracticeLogs(ctx context.Context, learnerID uuid.UUID, limit int) ([]domain.PracticeLog, error)
	PracticeDates(ctx context.Context, learnerID uuid.UUID) ([]time.Time, error)
}

// Deps wires a Tracker. Clock defaults to time.Now and Pace to
// pace.DefaultParams when left nil.
type Deps struct {
	Store   Store
	Catalog *curriculum.Catalog
	Pace    *pace.Params
	Clock   func() time.Time
	Log     *logger.Logger
}

// Tracker combines stored progress with the curriculum and the pace model.
type Tracker struct {
	store   Store
	catalog *curriculum.Catalog
	pace    *pace.Params
	now     func() time.Time
	log     *logger.Logger
}

func New(d Deps) *Tracker {
	t := &Tracker{
		store:   d.Store,
		catalog: d.Catalog,
		pace:    d.Pace,
		now:     d.Clock,
		log:     d.Log,
	}
	if t.catalog == nil {
		t.catalog = curriculum.Builtin()
	}
	if t.pace == nil {
		t.pace = pace.DefaultParams()
	}
	if t.now == nil {
		t.now = time.Now
	}
	if t.log == nil {
		t.log = logger.Nop()
	}
	return t
}

// Catalog returns the curriculum the tracker serves lessons from.
func (t *Tracker) Catalog() *curriculum.Catalog {
	return t.catalog
}

// Enroll validates the input and creates a learner starting at week 1, day 1.
func (t *Tracker) Enroll(ctx context.Context, in domain.NewLearner) (*domain.Learner, error) {
	start, target, err := in.Validate()
	if err != nil {
		return nil, err
	}
	l := domain.Learner{
		ID:            uuid.New(),
		Name:          in.Name,
		StartDate:     start,
		TargetEndDate: target,
		DaysPerWeek:   in.DaysPerWeek,
		CreatedAt:     t.now().UTC(),
	}
	if err := t.store.CreateLearner(ctx, l); err != nil {
		return nil, err
	}
	t.log.Info("learner enrolled", "learner_id", l.ID, "learner_name", l.Name, "target", in.TargetEndDate)
	return &l, nil
}

func (t *Tracker) Learner(ctx context.Context, id uuid.UUID) (*domain.Learner, error) {
	return t.store.GetLearner(ctx, id)
}

func (t *Tracker) Learners(ctx context.Context) ([]domain.Learner, error) {
	return t.store.ListLearners(ctx)
}

// Status is everything a dashboard shows about a learner.
type Status struct {
	Learner      domain.Learner    `json:"learner"`
	Progress     domain.Progress   `json:"progress"`
	Phase        int               `json:"phase"`
	PhaseName    string            `json:"phase_name"`
	Lesson       *curriculum.Day   `json:"lesson,omitempty"`
	Pace         pace.Info         `json:"pace"`
	CatchUpPlan  []string          `json:"catch_up_plan,omitempty"`
	RequiredPace pace.RequiredPace `json:"required_pace"`
	Streak       int               `json:"streak"`
	Finished     bool              `json:"finished"`
}

// Status computes the learner's current standing as of the tracker's clock.
func (t *Tracker) Status(ctx context.Context, id uuid.UUID) (*Status, error) {
	l, err := t.store.GetLearner(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := t.store.GetProgress(ctx, id)
	if err != nil {
		return nil, err
	}
	dates, err := t.store.PracticeDates(ctx, id)
	if err != nil {
		return nil, err
	}

	now := t.now()
	info := t.pace.Calculate(l.StartDate, l.TargetEndDate, p.DaysCompleted, now)
	phase := p.Phase()

	s := &Status{
		Learner:      *l,
		Progress:     *p,
		Phase:        phase,
		PhaseName:    curriculum.PhaseName(phase),
		Pace:         info,
		RequiredPace: t.pace.RequiredPace(info.DaysRemaining, l.TargetEndDate, now),
		Streak:       Streak(dates, now),
		Finished:     p.Finished(),
	}
	if lesson, ok := t.catalog.Lesson(p.Position); ok && !s.Finished {
		s.Lesson = &lesson
	}
	if info.ActionRequired {
		s.CatchUpPlan = pace.GenerateCatchUpPlan(info.BufferDays, l.DaysPerWeek)
	}
	return s, nil
}

// CompleteDay marks the current day done and moves to the next one. At the
// last day of week 48 the position stays put and only the count advances;
// after that ErrCurriculumComplete is returned.
func (t *Tracker) CompleteDay(ctx context.Context, id uuid.UUID) (*domain.Progress, error) {
	now := t.now()
	p, err := t.store.UpdateProgress(ctx, id, func(p domain.Progress) (domain.Progress, error) {
		if p.Finished() {
			return p, ErrCurriculumComplete
		}
		p.DaysCompleted++
		if next, ok := p.Position.Next(); ok {
			p.Position = next
		}
		p.UpdatedAt = now.UTC()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	t.log.Info("day completed",
		"learner_id", id,
		"days_completed", p.DaysCompleted,
		"week", p.Position.Week,
		"day", p.Position.Day,
	)
	return p, nil
}

// LogPractice records a practice session against the learner's current position.
func (t *Tracker) LogPractice(ctx context.Context, id uuid.UUID, in domain.NewPracticeLog) (*domain.PracticeLog, error) {
	on, err := in.Validate()
	if err != nil {
		return nil, err
	}
	p, err := t.store.GetProgress(ctx, id)
	if err != nil {
		return nil, err
	}
	pl := domain.PracticeLog{
		ID:          uuid.New(),
		LearnerID:   id,
		PracticedOn: on,
		Minutes:     in.Minutes,
		Position:    p.Position,
		Notes:       in.Notes,
		CreatedAt:   t.now().UTC(),
	}
	if err := t.store.InsertPracticeLog(ctx, pl); err != nil {
		return nil, err
	}
	return &pl, nil
}

// PracticeLogs returns the learner's most recent practice logs.
func (t *Tracker) PracticeLogs(ctx context.Context, id uuid.UUID, limit int) ([]domain.PracticeLog, error) {
	if _, err := t.store.GetLearner(ctx, id); err != nil {
		return nil, err
	}
	return t.store.ListPracticeLogs(ctx, id, limit)
}

// Prompt builds the tutor system prompt for the learner's current lesson.
func (t *Tracker) Prompt(ctx context.Context, id uuid.UUID) (string, error) {
	s, err := t.Status(ctx, id)
	if err != nil {
		return "", err
	}
	prompt, err := tutor.SystemPrompt(tutor.Context{
		LearnerName: s.Learner.Name,
		Position:    s.Progress.Position,
		PhaseName:   s.PhaseName,
		Lesson:      s.Lesson,
		Pace:        s.Pace,
	})
	if err != nil {
		return "", fmt.Errorf("render tutor prompt: %w", err)
	}
	return prompt, nil
}
