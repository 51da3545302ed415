package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conorfennell/pianopace/internal/curriculum"
	"github.com/conorfennell/pianopace/internal/pace"
)

func TestSystemPromptIncludesLessonAndPace(t *testing.T) {
	lesson, ok := curriculum.GetDay(1, 7)
	require.True(t, ok)

	out, err := SystemPrompt(Context{
		LearnerName: "Sam",
		Position:    curriculum.Position{Week: 1, Day: 7},
		PhaseName:   curriculum.PhaseName(1),
		Lesson:      &lesson,
		Pace:        pace.Info{Status: pace.Behind, DaysCompleted: 6, BufferDays: -9},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "guiding Sam through")
	assert.Contains(t, out, "week 1, day 7 (Foundation phase)")
	assert.Contains(t, out, "Today's lesson: Week 1 Checkpoint (review)")
	assert.Contains(t, out, "- Show good posture and hand shape")
	assert.Contains(t, out, "Exercise: Week 1 Review Run at 70 BPM")
	assert.Contains(t, out, "Tips: Warm up with the C-D-E steps first; Record yourself if you can")
	assert.Contains(t, out, "This is a checkpoint day.")
	assert.Contains(t, out, "Pace: behind, 6 of 336 lessons done, buffer -9 days.")
	assert.Contains(t, out, "never guilt-tripping")
}

func TestSystemPromptWithoutLesson(t *testing.T) {
	out, err := SystemPrompt(Context{
		LearnerName: "Sam",
		Position:    curriculum.Position{Week: 12, Day: 3},
		PhaseName:   "Song Introduction",
		Pace:        pace.Info{Status: pace.Ahead},
	})
	require.NoError(t, err)
	assert.NotContains(t, out, "Today's lesson")
	assert.NotContains(t, out, "checkpoint day")
	assert.Contains(t, out, "Celebrate that")
}

func TestToneCoversEveryStatus(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range []pace.Status{pace.AtRisk, pace.Behind, pace.OnTrack, pace.Ahead} {
		seen[tone(s)] = true
	}
	assert.Len(t, seen, 4)
}
