package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/conorfennell/pianopace/internal/curriculum"
)

// Learner is a person working through the curriculum.
type Learner struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	StartDate     time.Time `json:"start_date"`
	TargetEndDate time.Time `json:"target_end_date"`
	DaysPerWeek   float64   `json:"days_per_week"`
	CreatedAt     time.Time `json:"created_at"`
}

// Progress is where a learner is in the curriculum. The phase is always
// derived from Position and is not stored.
type Progress struct {
	LearnerID     uuid.UUID           `json:"learner_id"`
	Position      curriculum.Position `json:"position"`
	DaysCompleted int                 `json:"days_completed"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Phase returns the phase of the current position.
func (p Progress) Phase() int {
	return p.Position.Phase()
}

// Finished reports whether every curriculum day has been completed.
func (p Progress) Finished() bool {
	return p.DaysCompleted >= curriculum.TotalDays
}

// PracticeLog records one practice session.
type PracticeLog struct {
	ID          uuid.UUID           `json:"id"`
	LearnerID   uuid.UUID           `json:"learner_id"`
	PracticedOn time.Time           `json:"practiced_on"`
	Minutes     int                 `json:"minutes"`
	Position    curriculum.Position `json:"position"`
	Notes       string              `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}
