package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError describes a problem with one input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError is returned when user input fails validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Error
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// NewLearner holds the information needed to enrol a learner.
type NewLearner struct {
	Name          string  `json:"name" validate:"required,max=100"`
	StartDate     string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	TargetEndDate string  `json:"target_end_date" validate:"required,datetime=2006-01-02"`
	DaysPerWeek   float64 `json:"days_per_week" validate:"gte=1,lte=7"`
}

// Validate checks the input and returns the parsed start and target dates.
// The target must fall after the start.
func (nl *NewLearner) Validate() (start, target time.Time, err error) {
	nl.Name = strings.TrimSpace(nl.Name)
	if err := check(nl); err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, _ = time.Parse(DateLayout, nl.StartDate)
	target, _ = time.Parse(DateLayout, nl.TargetEndDate)
	if !target.After(start) {
		return time.Time{}, time.Time{}, &ValidationError{Fields: []FieldError{
			{Field: "target_end_date", Error: "must be after start_date"},
		}}
	}
	return start, target, nil
}

// NewPracticeLog holds the information needed to record a practice session.
type NewPracticeLog struct {
	PracticedOn string `json:"practiced_on" validate:"required,datetime=2006-01-02"`
	Minutes     int    `json:"minutes" validate:"gt=0,lte=600"`
	Notes       string `json:"notes" validate:"max=2000"`
}

// Validate checks the input and returns the parsed practice date.
func (np *NewPracticeLog) Validate() (time.Time, error) {
	np.Notes = strings.TrimSpace(np.Notes)
	if err := check(np); err != nil {
		return time.Time{}, err
	}
	on, _ := time.Parse(DateLayout, np.PracticedOn)
	return on, nil
}

func check(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Error: describe(fe)})
	}
	return &ValidationError{Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a date like " + fe.Param()
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}
