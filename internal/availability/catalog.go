package availability

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const ClockLayout = "15:04"

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Catalog is the fixed set of bookable wall-clock times in the reference
// timezone: Start inclusive, End exclusive, stepping by Interval.
type Catalog struct {
	Start    string
	End      string
	Interval time.Duration
}

// Times returns the catalog in ascending order. A degenerate catalog, including
// one whose interval is not a whole number of minutes, yields an empty slice.
func (c Catalog) Times() []string {
	times := []string{}

	start, err := minutesOf(c.Start)
	if err != nil {
		return times
	}
	end, err := minutesOf(c.End)
	if err != nil {
		return times
	}
	if c.Interval%time.Minute != 0 {
		return times
	}
	step := int(c.Interval / time.Minute)
	if step <= 0 || end <= start {
		return times
	}

	for m := start; m < end; m += step {
		times = append(times, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return times
}

// Contains reports whether t is one of the catalog times.
func (c Catalog) Contains(t string) bool {
	for _, candidate := range c.Times() {
		if candidate == t {
			return true
		}
	}
	return false
}

// ValidClock reports whether s is a 24h HH:MM string.
func ValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

func minutesOf(s string) (int, error) {
	h, m, err := parseClock(s)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

func parseClock(s string) (int, int, error) {
	if !clockRegex.MatchString(s) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return h, m, nil
}
