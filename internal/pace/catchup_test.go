package pace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCatchUpPlan(t *testing.T) {
	t.Run("light", func(t *testing.T) {
		plan := GenerateCatchUpPlan(5, 5)
		require.Len(t, plan, 2)
		assert.Contains(t, plan[0], "one extra practice session")
		assert.Equal(t, plan, GenerateCatchUpPlan(-5, 5), "sign is ignored")
		assert.Equal(t, plan, GenerateCatchUpPlan(7, 5))
	})

	t.Run("moderate", func(t *testing.T) {
		plan := GenerateCatchUpPlan(-10, 5)
		require.Len(t, plan, 3)
		assert.Contains(t, plan[0], "two extra practice sessions per week")
		assert.Equal(t, plan, GenerateCatchUpPlan(-14, 5))
	})

	t.Run("structural", func(t *testing.T) {
		plan := GenerateCatchUpPlan(-20, 3)
		require.Len(t, plan, 3)
		assert.Equal(t, "Raise your cadence from 3 to 5 practice days per week.", plan[0])

		plan = GenerateCatchUpPlan(-28, 4.5)
		assert.Equal(t, "Raise your cadence from 4.5 to 6.5 practice days per week.", plan[0])
	})

	t.Run("strategic", func(t *testing.T) {
		plan := GenerateCatchUpPlan(35, 5)
		require.Len(t, plan, 4)
		assert.Contains(t, plan[0], "35 days behind")
		assert.Contains(t, plan[1], "Intensive catch-up")
		assert.Contains(t, plan[2], "about 5 weeks")
		assert.Contains(t, plan[3], "Reduce scope")

		assert.Len(t, GenerateCatchUpPlan(-29, 5), 4)
	})
}

func TestRequiredPace(t *testing.T) {
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		remaining  int
		target     time.Time
		perWeek    float64
		achievable bool
	}{
		{"ten weeks at ten per week", 100, now.AddDate(0, 0, 70), 10, true},
		{"just over the limit", 101, now.AddDate(0, 0, 70), 10.1, false},
		{"rounds to one decimal", 100, now.AddDate(0, 0, 21), 33.3, false},
		{"partial week rounds up", 20, now.AddDate(0, 0, 8), 10, true},
		{"target passed counts as one week", 6, now.AddDate(0, 0, -30), 6, true},
		{"target today counts as one week", 12, now, 12, false},
		{"nothing left", 0, now.AddDate(0, 0, 70), 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rp := CalculateRequiredPace(tc.remaining, tc.target, now)
			assert.InDelta(t, tc.perWeek, rp.DaysPerWeek, 1e-9)
			assert.Equal(t, tc.achievable, rp.Achievable)
		})
	}
}

func TestRequiredPaceCustomLimit(t *testing.T) {
	now := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	p := DefaultParams()
	p.MaxDaysPerWeek = 7
	rp := p.RequiredPace(80, now.AddDate(0, 0, 70), now)
	assert.InDelta(t, 8, rp.DaysPerWeek, 1e-9)
	assert.False(t, rp.Achievable)
}
