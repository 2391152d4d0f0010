package availability

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// BusinessDays are the weekdays on which slots are offered.
var BusinessDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// IsBusinessDay reports whether date is Monday through Friday in the
// calendar of loc. Unparsable dates are never business days.
func IsBusinessDay(date string, loc *time.Location) bool {
	t, err := ParseDate(date, loc)
	if err != nil {
		return false
	}
	return isBusinessWeekday(t.Weekday())
}

func isBusinessWeekday(wd time.Weekday) bool {
	for _, d := range BusinessDays {
		if d == wd {
			return true
		}
	}
	return false
}
