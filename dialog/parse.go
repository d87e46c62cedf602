package dialog

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

var (
	errInvalidDate = &parseErr{msg: "invalid date (expected YYYY-MM-DD)"}
	errInvalidTime = &parseErr{msg: "invalid time (expected HH:MM, 24h)"}
)

type parseErr struct{ msg string }

func (e *parseErr) Error() string { return e.msg }

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

func parseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errInvalidTime
	}
	return t, nil
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// validateDate is the survey validator for date prompts: parse failure or a
// date outside [first, last] rejects the answer and keeps the prompt open.
func validateDate(first, last time.Time) func(ans interface{}) error {
	return func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return errInvalidDate
		}
		t, err := parseDate(s)
		if err != nil {
			return err
		}
		if day(t).Before(day(first)) || day(t).After(day(last)) {
			return fmt.Errorf("date must be between %s and %s",
				first.Format(dateLayout), last.Format(dateLayout))
		}
		return nil
	}
}

// validateClock is the survey validator for time prompts.
func validateClock(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return errInvalidTime
	}
	_, err := parseClock(s)
	return err
}
