package curriculum

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidWeek wraps every week validation failure.
var ErrInvalidWeek = errors.New("invalid week")

// ValidateWeek checks field constraints and the weekly shape: day 1 is an
// info dump, days 2-6 are practice, day 7 is a review with a checkpoint.
func ValidateWeek(w Week) error {
	if err := validate.Struct(w); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w %d: %s failed %q", ErrInvalidWeek, w.Week, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w %d: %v", ErrInvalidWeek, w.Week, err)
	}

	for i, d := range w.Days {
		if d.Day != i+1 {
			return fmt.Errorf("%w %d: day at index %d is numbered %d", ErrInvalidWeek, w.Week, i, d.Day)
		}
		want := expectedType(d.Day)
		if d.Type != want {
			return fmt.Errorf("%w %d: day %d is %s, want %s", ErrInvalidWeek, w.Week, d.Day, d.Type, want)
		}
		hasCheckpoint := len(d.Checkpoint) > 0
		if hasCheckpoint != (d.Type == Review) {
			return fmt.Errorf("%w %d: day %d checkpoint presence does not match type %s", ErrInvalidWeek, w.Week, d.Day, d.Type)
		}
	}
	return nil
}

func expectedType(day int) DayType {
	switch day {
	case 1:
		return InfoDump
	case DaysPerWeek:
		return Review
	default:
		return Practice
	}
}
