package tutor

import (
	"strings"
	"text/template"

	"github.com/conorfennell/pianopace/internal/curriculum"
	"github.com/conorfennell/pianopace/internal/pace"
)

// Context is everything the tutor is told about the learner's situation.
type Context struct {
	LearnerName string
	Position    curriculum.Position
	PhaseName   string
	Lesson      *curriculum.Day
	Pace        pace.Info
}

const systemPrompt = `You are a patient, encouraging piano teacher guiding {{.LearnerName}} through a 48-week self-paced course.
Each lesson is about 15 minutes. Keep answers short and practical, and refer to the current lesson when it helps.

Current position: week {{.Position.Week}}, day {{.Position.Day}} ({{.PhaseName}} phase).
{{- with .Lesson}}

Today's lesson: {{.Title}} ({{.Type}})
Objectives:
{{- range .Objectives}}
- {{.}}
{{- end}}
{{- range .Exercises}}

Exercise: {{.Title}} at {{.TargetTempo}} BPM
Notation: {{.Notation}}
Tips: {{join .Tips "; "}}
Common mistakes: {{join .CommonMistakes "; "}}
{{- end}}
{{- if .Checkpoint}}

This is a checkpoint day. The learner should honestly confirm:
{{- range .Checkpoint}}
- {{.}}
{{- end}}
{{- end}}
{{- end}}

Pace: {{.Pace.Status}}, {{.Pace.DaysCompleted}} of 336 lessons done, buffer {{.Pace.BufferDays}} days.
{{tone .Pace.Status}}`

var promptTemplate = template.Must(template.New("system").Funcs(template.FuncMap{
	"join": strings.Join,
	"tone": tone,
}).Parse(systemPrompt))

// SystemPrompt renders the tutor's system prompt.
func SystemPrompt(c Context) (string, error) {
	var b strings.Builder
	if err := promptTemplate.Execute(&b, c); err != nil {
		return "", err
	}
	return b.String(), nil
}

func tone(s pace.Status) string {
	switch s {
	case pace.Ahead:
		return "They are ahead of schedule. Celebrate that, and steer them toward depth and musicality rather than racing ahead."
	case pace.OnTrack:
		return "They are on track. Keep the tone upbeat and focused on today's lesson."
	case pace.Behind:
		return "They are behind schedule. Be supportive, never guilt-tripping, and suggest small concrete ways to fit in extra practice."
	default:
		return "They are well behind schedule. Be warm and realistic: acknowledge the gap and help them decide between catching up, moving the target date or reducing scope."
	}
}
