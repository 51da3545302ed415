package pace

import (
	"math"
	"time"
)

// TotalCurriculumDays is the length of the linear schedule: 48 weeks of 7 days.
const TotalCurriculumDays = 336

const secondsPerDay = 24 * 60 * 60

// Status classifies a learner against the ideal linear schedule.
type Status string

const (
	AtRisk  Status = "at_risk"
	Behind  Status = "behind"
	OnTrack Status = "on_track"
	Ahead   Status = "ahead"
)

// Rank orders statuses from worst (0) to best (3). Unknown statuses rank -1.
func (s Status) Rank() int {
	switch s {
	case AtRisk:
		return 0
	case Behind:
		return 1
	case OnTrack:
		return 2
	case Ahead:
		return 3
	}
	return -1
}

// Params holds the policy thresholds of the pace model. All buffers are in
// curriculum-days.
type Params struct {
	AheadThreshold int     // buffer at or above this is ahead
	OnTrackFloor   int     // buffer at or above this (and below AheadThreshold) is on track
	BehindFloor    int     // buffer at or above this is behind; below is at risk
	MaxDaysPerWeek float64 // required pace above this is not achievable
}

// DefaultParams returns the product's standard thresholds.
func DefaultParams() *Params {
	return &Params{
		AheadThreshold: 14,
		OnTrackFloor:   -7,
		BehindFloor:    -21,
		MaxDaysPerWeek: 10,
	}
}

// Info is a point-in-time snapshot of a learner's pace. It is derived from
// the inputs and never stored.
type Info struct {
	DaysCompleted       int       `json:"days_completed"`
	ExpectedDays        int       `json:"expected_days"`
	BufferDays          int       `json:"buffer_days"`
	Status              Status    `json:"status"`
	ProjectedCompletion time.Time `json:"projected_completion"`
	DaysRemaining       int       `json:"days_remaining"`
	PercentComplete     int       `json:"percent_complete"`
	Message             string    `json:"message"`
	ActionRequired      bool      `json:"action_required"`
}

// Calculate compares daysCompleted against a linear schedule running from
// start to target, as seen at now. It accepts any input: a future start,
// an empty or inverted window and out-of-range counts all produce a usable
// snapshot.
func (p *Params) Calculate(start, target time.Time, daysCompleted int, now time.Time) Info {
	daysElapsed := daysBetween(start, now)
	if daysElapsed < 0 {
		daysElapsed = 0
	}
	totalDuration := daysBetween(start, target)

	expected := TotalCurriculumDays
	if totalDuration > 0 {
		expected = roundHalfUp(float64(daysElapsed) / float64(totalDuration) * TotalCurriculumDays)
		if expected > TotalCurriculumDays {
			expected = TotalCurriculumDays
		}
	}

	buffer := daysCompleted - expected
	status := p.classify(buffer)
	projected := projectCompletion(daysElapsed, daysCompleted, target, now)
	remaining := TotalCurriculumDays - daysCompleted

	return Info{
		DaysCompleted:       daysCompleted,
		ExpectedDays:        expected,
		BufferDays:          buffer,
		Status:              status,
		ProjectedCompletion: projected,
		DaysRemaining:       remaining,
		PercentComplete:     roundHalfUp(float64(daysCompleted) / TotalCurriculumDays * 100),
		Message:             message(status, buffer, remaining, projected, target),
		ActionRequired:      status == Behind || status == AtRisk,
	}
}

// CalculatePaceInfo runs Calculate with DefaultParams.
func CalculatePaceInfo(start, target time.Time, daysCompleted int, now time.Time) Info {
	return DefaultParams().Calculate(start, target, daysCompleted, now)
}

func (p *Params) classify(buffer int) Status {
	switch {
	case buffer >= p.AheadThreshold:
		return Ahead
	case buffer >= p.OnTrackFloor:
		return OnTrack
	case buffer >= p.BehindFloor:
		return Behind
	default:
		return AtRisk
	}
}

// projectCompletion extrapolates the learner's own rate. With no progress or
// no elapsed time there is no rate, so the target date stands.
func projectCompletion(daysElapsed, daysCompleted int, target, now time.Time) time.Time {
	if daysCompleted >= TotalCurriculumDays {
		return now
	}
	if daysCompleted > 0 && daysElapsed > 0 {
		perDay := float64(daysElapsed) / float64(daysCompleted)
		remaining := roundHalfUp(perDay * float64(TotalCurriculumDays-daysCompleted))
		return now.AddDate(0, 0, remaining)
	}
	return target
}

// daysBetween counts calendar days from a to b, ignoring time of day. Each
// time is read as a date in its own location.
func daysBetween(a, b time.Time) int {
	return int((civilDate(b).Unix() - civilDate(a).Unix()) / secondsPerDay)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// roundHalfUp rounds .5 toward positive infinity, for negatives too.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
