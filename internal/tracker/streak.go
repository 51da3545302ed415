package tracker

import "time"

// Streak counts consecutive calendar days of practice ending today, or
// ending yesterday when today has no practice yet. dates must be distinct
// days sorted newest first.
func Streak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	day := dateOf(now)
	first := dateOf(dates[0])
	if first.Before(day) {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range dates {
		d = dateOf(d)
		if d.After(day) {
			continue
		}
		if !d.Equal(day) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
