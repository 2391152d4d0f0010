package availability

import (
	"fmt"
	"strings"
	"time"
)

const DisplayLayout = "3:04 PM"

// ZoneResolver loads an IANA timezone by name.
type ZoneResolver func(name string) (*time.Location, error)

// Projection is one absolute instant expressed as a wall clock in a zone.
type Projection struct {
	Instant   time.Time
	Zone      string
	Date      string
	Time      string
	Display   string
	DayOffset int
	Fallback  bool
}

// Projector converts reference wall-clock times into viewer wall-clock times.
type Projector struct {
	reference *time.Location
	resolve   ZoneResolver
}

func NewProjector(reference *time.Location, resolve ZoneResolver) *Projector {
	if resolve == nil {
		resolve = time.LoadLocation
	}
	return &Projector{
		reference: reference,
		resolve:   resolve,
	}
}

func (p *Projector) Reference() *time.Location {
	return p.reference
}

// ResolveZone loads a named zone. The empty name and "Local" are rejected so
// the host timezone never leaks into a projection.
func (p *Projector) ResolveZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}
	loc, err := p.resolve(name)
	if err != nil || loc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}
	return loc, nil
}

// Instant returns the absolute instant of date + referenceTime in the
// reference zone, using the offset rules in force on that date.
func (p *Projector) Instant(date, referenceTime string) (time.Time, error) {
	return instantIn(date, referenceTime, p.reference)
}

// Project returns the wall clock of date + referenceTime in targetZone. An
// unusable target zone falls back to the reference zone and sets Fallback.
func (p *Projector) Project(date, referenceTime, targetZone string) (Projection, error) {
	instant, err := p.Instant(date, referenceTime)
	if err != nil {
		return Projection{}, err
	}

	loc, zoneErr := p.ResolveZone(targetZone)
	if zoneErr != nil {
		return project(instant, p.reference, true), nil
	}
	return project(instant, loc, false), nil
}

// Convert is the strict two-zone conversion: it never falls back and reports
// ErrUnknownTimezone when either zone cannot be resolved.
func (p *Projector) Convert(date, clock, fromZone, toZone string) (Projection, error) {
	from, err := p.ResolveZone(fromZone)
	if err != nil {
		return Projection{}, err
	}
	to, err := p.ResolveZone(toZone)
	if err != nil {
		return Projection{}, err
	}

	instant, err := instantIn(date, clock, from)
	if err != nil {
		return Projection{}, err
	}
	return project(instant, to, false), nil
}

// FormatDisplay renders an HH:MM clock as 12-hour text, e.g. "2:30 PM".
func FormatDisplay(clock string) (string, error) {
	h, m, err := parseClock(clock)
	if err != nil {
		return "", err
	}
	return time.Date(2000, 1, 1, h, m, 0, 0, time.UTC).Format(DisplayLayout), nil
}

func instantIn(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	h, m, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc), nil
}

// project expects instant to carry the source zone so that instant.Date() is
// the source calendar date.
func project(instant time.Time, loc *time.Location, fallback bool) Projection {
	local := instant.In(loc)
	return Projection{
		Instant:   instant,
		Zone:      loc.String(),
		Date:      local.Format(DateLayout),
		Time:      local.Format(ClockLayout),
		Display:   local.Format(DisplayLayout),
		DayOffset: dayOffset(instant, local),
		Fallback:  fallback,
	}
}

func dayOffset(source, target time.Time) int {
	sy, sm, sd := source.Date()
	ty, tm, td := target.Date()
	a := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
