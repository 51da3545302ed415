package curriculum

import (
	"fmt"
	"sort"
)

// Catalog is an immutable table of weeks keyed by week number. Weeks that
// were never added are reported as not found, the same as out-of-range ones.
type Catalog struct {
	weeks map[int]Week
}

// NewCatalog validates and indexes the given weeks. A week number may
// appear only once.
func NewCatalog(weeks ...Week) (*Catalog, error) {
	c := &Catalog{weeks: make(map[int]Week, len(weeks))}
	for _, w := range weeks {
		if _, dup := c.weeks[w.Week]; dup {
			return nil, fmt.Errorf("%w %d: duplicate week", ErrInvalidWeek, w.Week)
		}
		if err := ValidateWeek(w); err != nil {
			return nil, err
		}
		c.weeks[w.Week] = w.clone()
	}
	return c, nil
}

// Overlay returns a new catalog where the given weeks replace (or fill in)
// the receiver's weeks. The receiver is left untouched.
func (c *Catalog) Overlay(weeks ...Week) (*Catalog, error) {
	patch, err := NewCatalog(weeks...)
	if err != nil {
		return nil, err
	}
	out := &Catalog{weeks: make(map[int]Week, len(c.weeks)+len(patch.weeks))}
	for n, w := range c.weeks {
		out.weeks[n] = w
	}
	for n, w := range patch.weeks {
		out.weeks[n] = w
	}
	return out, nil
}

// Week looks up a week. The returned value is a copy.
func (c *Catalog) Week(week int) (Week, bool) {
	if c == nil || week < 1 || week > TotalWeeks {
		return Week{}, false
	}
	w, ok := c.weeks[week]
	if !ok {
		return Week{}, false
	}
	return w.clone(), true
}

// Day looks up a single day of a week.
func (c *Catalog) Day(week, day int) (Day, bool) {
	if day < 1 || day > DaysPerWeek {
		return Day{}, false
	}
	if c == nil || week < 1 || week > TotalWeeks {
		return Day{}, false
	}
	w, ok := c.weeks[week]
	if !ok || len(w.Days) < day {
		return Day{}, false
	}
	return w.Days[day-1].clone(), true
}

// Lesson looks up the day at a position.
func (c *Catalog) Lesson(p Position) (Day, bool) {
	return c.Day(p.Week, p.Day)
}

// WeekNumbers lists the weeks present, ascending.
func (c *Catalog) WeekNumbers() []int {
	if c == nil {
		return nil
	}
	nums := make([]int, 0, len(c.weeks))
	for n := range c.weeks {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Len returns the number of weeks present.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.weeks)
}

var builtin = mustBuiltin()

func mustBuiltin() *Catalog {
	c, err := NewCatalog(builtinWeeks()...)
	if err != nil {
		panic(fmt.Sprintf("curriculum: built-in content is invalid: %v", err))
	}
	return c
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return builtin
}

// GetWeek looks up a week in the built-in catalog.
func GetWeek(week int) (Week, bool) {
	return builtin.Week(week)
}

// GetDay looks up a day in the built-in catalog.
func GetDay(week, day int) (Day, bool) {
	return builtin.Day(week, day)
}
