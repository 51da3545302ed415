package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStreak(t *testing.T) {
	now := time.Date(2026, 4, 10, 18, 30, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2026, 4, d, 0, 0, 0, 0, time.UTC) }

	testCases := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"no practice", nil, 0},
		{"today only", []time.Time{day(10)}, 1},
		{"run ending today", []time.Time{day(10), day(9), day(8)}, 3},
		{"run ending yesterday", []time.Time{day(9), day(8)}, 2},
		{"gap breaks the run", []time.Time{day(10), day(9), day(7), day(6)}, 2},
		{"last practice two days ago", []time.Time{day(8), day(7)}, 0},
		{"future dates ignored", []time.Time{day(12), day(10), day(9)}, 2},
		{"stale run", []time.Time{day(2), day(1), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Streak(tc.dates, now))
		})
	}

	t.Run("crosses a month boundary", func(t *testing.T) {
		now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
		dates := []time.Time{day(1), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)}
		assert.Equal(t, 3, Streak(dates, now))
	})
}
