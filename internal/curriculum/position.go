package curriculum

import "fmt"

// Position addresses one curriculum day.
type Position struct {
	Week int `json:"week"`
	Day  int `json:"day"`
}

// Start is the first day of the curriculum.
var Start = Position{Week: 1, Day: 1}

// Valid reports whether the position lies inside the 48x7 grid.
func (p Position) Valid() bool {
	return p.Week >= 1 && p.Week <= TotalWeeks && p.Day >= 1 && p.Day <= DaysPerWeek
}

// Index linearises the position into [0, 335].
func (p Position) Index() int {
	return (p.Week-1)*DaysPerWeek + (p.Day - 1)
}

// Phase returns the phase of the position's week.
func (p Position) Phase() int {
	return PhaseForWeek(p.Week)
}

// Next returns the position after p. The second result is false when the
// successor falls outside the curriculum (after week 48, day 7); callers must
// not persist it.
func (p Position) Next() (Position, bool) {
	next := Position{Week: p.Week, Day: p.Day + 1}
	if next.Day > DaysPerWeek {
		next = Position{Week: p.Week + 1, Day: 1}
	}
	return next, next.Valid()
}

func (p Position) String() string {
	return fmt.Sprintf("week %d, day %d", p.Week, p.Day)
}

// PositionAt is the inverse of Index.
func PositionAt(index int) (Position, bool) {
	if index < 0 || index >= TotalDays {
		return Position{}, false
	}
	return Position{Week: index/DaysPerWeek + 1, Day: index%DaysPerWeek + 1}, true
}
