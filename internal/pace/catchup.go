package pace

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// GenerateCatchUpPlan suggests how to recover a deficit of bufferDays
// curriculum-days. The sign of bufferDays is ignored; the advice is tiered on
// the size of the gap.
func GenerateCatchUpPlan(bufferDays int, currentDaysPerWeek float64) []string {
	deficit := bufferDays
	if deficit < 0 {
		deficit = -deficit
	}

	switch {
	case deficit <= 7:
		return []string{
			"Add one extra practice session this week.",
			"On a review day, also work through one of the practice lessons you skipped.",
		}
	case deficit <= 14:
		return []string{
			"Add two extra practice sessions per week for the next two weeks.",
			"Keep the extra sessions short: one lesson each, 15 minutes.",
			"Check your pace again at the end of the two weeks.",
		}
	case deficit <= 28:
		return []string{
			fmt.Sprintf("Raise your cadence from %s to %s practice days per week.",
				formatDays(currentDaysPerWeek), formatDays(currentDaysPerWeek+2)),
			"Block out fixed practice times in your calendar so sessions don't get skipped.",
			"Review your pace weekly until you are back on track.",
		}
	default:
		weeks := (deficit + 6) / 7
		return []string{
			fmt.Sprintf("You're %d days behind, which is more than small adjustments can recover. Pick one of these options:", deficit),
			"Intensive catch-up: practice twice a day, six days a week, until the gap closes.",
			fmt.Sprintf("Move your target date back by about %d weeks to match your real pace.", weeks),
			"Reduce scope: trim the remaining song sections to the essentials and keep your target date.",
		}
	}
}

// RequiredPace is the weekly rate needed to finish on time.
type RequiredPace struct {
	DaysPerWeek float64 `json:"days_per_week"`
	Achievable  bool    `json:"achievable"`
}

// RequiredPace returns the curriculum-days per calendar week needed to cover
// daysRemaining before target. At least one week is always assumed.
func (p *Params) RequiredPace(daysRemaining int, target, now time.Time) RequiredPace {
	weeks := int(math.Ceil(float64(daysBetween(now, target)) / 7))
	if weeks < 1 {
		weeks = 1
	}
	perWeek := math.Round(float64(daysRemaining)/float64(weeks)*10) / 10
	return RequiredPace{
		DaysPerWeek: perWeek,
		Achievable:  perWeek <= p.MaxDaysPerWeek,
	}
}

// CalculateRequiredPace runs RequiredPace with DefaultParams.
func CalculateRequiredPace(daysRemaining int, target, now time.Time) RequiredPace {
	return DefaultParams().RequiredPace(daysRemaining, target, now)
}

func formatDays(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
