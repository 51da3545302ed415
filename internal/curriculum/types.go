package curriculum

const (
	TotalWeeks    = 48
	DaysPerWeek   = 7
	TotalDays     = TotalWeeks * DaysPerWeek
	WeeksPerPhase = 8
	TotalPhases   = TotalWeeks / WeeksPerPhase
)

// DayType says what kind of session a curriculum day is.
type DayType string

const (
	InfoDump DayType = "info_dump"
	Practice DayType = "practice"
	Review   DayType = "review"
)

// Exercise is a single drill inside a day. Notation holds a short line of
// the text notation used across the curriculum, e.g. "RH: C D E F G | G F E D C".
type Exercise struct {
	ID             string   `json:"id" yaml:"id" validate:"required"`
	Title          string   `json:"title" yaml:"title" validate:"required"`
	Description    string   `json:"description" yaml:"description"`
	Notation       string   `json:"notation" yaml:"notation"`
	TargetTempo    int      `json:"target_tempo" yaml:"target_tempo" validate:"gt=0"`
	Tips           []string `json:"tips" yaml:"tips" validate:"min=1,dive,required"`
	CommonMistakes []string `json:"common_mistakes" yaml:"common_mistakes" validate:"min=1,dive,required"`
}

// Day is the content of one curriculum day.
// Checkpoint is set only on review days.
type Day struct {
	Day        int        `json:"day" yaml:"day" validate:"min=1,max=7"`
	Type       DayType    `json:"type" yaml:"type" validate:"oneof=info_dump practice review"`
	Title      string     `json:"title" yaml:"title" validate:"required"`
	Objectives []string   `json:"objectives" yaml:"objectives" validate:"min=1,dive,required"`
	Content    string     `json:"content" yaml:"content"`
	Exercises  []Exercise `json:"exercises" yaml:"exercises" validate:"dive"`
	Checkpoint []string   `json:"checkpoint,omitempty" yaml:"checkpoint,omitempty" validate:"dive,required"`
}

// Week groups seven ordered days. Days[n-1] is day n.
type Week struct {
	Week  int    `json:"week" yaml:"week" validate:"min=1,max=48"`
	Title string `json:"title" yaml:"title" validate:"required"`
	Focus string `json:"focus" yaml:"focus"`
	Days  []Day  `json:"days" yaml:"days" validate:"len=7,dive"`
}

// Phase returns the phase the week belongs to.
func (w Week) Phase() int {
	return PhaseForWeek(w.Week)
}

func (e Exercise) clone() Exercise {
	e.Tips = append([]string(nil), e.Tips...)
	e.CommonMistakes = append([]string(nil), e.CommonMistakes...)
	return e
}

func (d Day) clone() Day {
	d.Objectives = append([]string(nil), d.Objectives...)
	if d.Checkpoint != nil {
		d.Checkpoint = append([]string(nil), d.Checkpoint...)
	}
	exercises := make([]Exercise, len(d.Exercises))
	for i, ex := range d.Exercises {
		exercises[i] = ex.clone()
	}
	d.Exercises = exercises
	return d
}

func (w Week) clone() Week {
	days := make([]Day, len(w.Days))
	for i, d := range w.Days {
		days[i] = d.clone()
	}
	w.Days = days
	return w
}
