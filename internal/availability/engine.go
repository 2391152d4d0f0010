package availability

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"leadg/pkg/model"
)

// Engine computes slot availability for a date from a snapshot of stored
// appointments. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog       Catalog
	projector     *Projector
	horizonMonths int
}

func NewEngine(catalog Catalog, projector *Projector, horizonMonths int) *Engine {
	return &Engine{
		catalog:       catalog,
		projector:     projector,
		horizonMonths: horizonMonths,
	}
}

func (e *Engine) Catalog() Catalog {
	return e.catalog
}

func (e *Engine) Projector() *Projector {
	return e.projector
}

func (e *Engine) Reference() *time.Location {
	return e.projector.Reference()
}

// OccupiedTimes returns the reference times on date held by appointments that
// are not cancelled.
func OccupiedTimes(date string, appointments []*model.Appointment) map[string]struct{} {
	occupied := make(map[string]struct{})
	for _, a := range appointments {
		if a == nil || a.Date != date || !a.Occupies() {
			continue
		}
		occupied[a.ReferenceTime] = struct{}{}
	}
	return occupied
}

// Availability returns the free slots on date projected for viewerZone.
func (e *Engine) Availability(date, viewerZone string, appointments []*model.Appointment) (*model.Availability, error) {
	return e.compute(date, viewerZone, appointments, false)
}

// Slots returns every catalog slot on date with its availability flag.
func (e *Engine) Slots(date, viewerZone string, appointments []*model.Appointment) (*model.Availability, error) {
	return e.compute(date, viewerZone, appointments, true)
}

// CheckSlot tells whether referenceTime on date can be booked given the
// snapshot. It returns nil or one of the package sentinel errors.
func (e *Engine) CheckSlot(date, referenceTime string, appointments []*model.Appointment) error {
	if !IsBusinessDay(date, e.Reference()) {
		if _, err := ParseDate(date, e.Reference()); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrNotBusinessDay, date)
	}
	if !ValidClock(referenceTime) {
		return fmt.Errorf("%w: %q", ErrInvalidTime, referenceTime)
	}
	if !e.catalog.Contains(referenceTime) {
		return fmt.Errorf("%w: %s", ErrOutsideCatalog, referenceTime)
	}
	if _, taken := OccupiedTimes(date, appointments)[referenceTime]; taken {
		return fmt.Errorf("%w: %s %s", ErrSlotOccupied, date, referenceTime)
	}
	return nil
}

func (e *Engine) compute(date, viewerZone string, appointments []*model.Appointment, includeBooked bool) (*model.Availability, error) {
	ref := e.Reference()
	day, err := ParseDate(date, ref)
	if err != nil {
		return nil, err
	}

	result := &model.Availability{
		Date:              date,
		ReferenceTimezone: ref.String(),
		ViewerTimezone:    strings.TrimSpace(viewerZone),
		Slots:             []model.Slot{},
		BookedTimes:       []string{},
	}

	viewerLoc, zoneErr := e.projector.ResolveZone(viewerZone)
	if zoneErr != nil {
		viewerLoc = ref
		result.Fallback = true
		result.ViewerTimezone = ref.String()
	}

	if !isBusinessWeekday(day.Weekday()) {
		return result, nil
	}
	result.BusinessDay = true

	occupied := OccupiedTimes(date, appointments)
	for t := range occupied {
		result.BookedTimes = append(result.BookedTimes, t)
	}
	sort.Strings(result.BookedTimes)

	type entry struct {
		instant time.Time
		slot    model.Slot
	}
	var entries []entry

	for _, t := range e.catalog.Times() {
		_, taken := occupied[t]
		if taken && !includeBooked {
			continue
		}

		h, m, _ := parseClock(t)
		instant := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, ref)
		p := project(instant, viewerLoc, result.Fallback)

		entries = append(entries, entry{
			instant: instant,
			slot: model.Slot{
				ReferenceTime:    t,
				ReferenceDisplay: instant.Format(DisplayLayout),
				ViewerTime:       p.Time,
				ViewerDate:       p.Date,
				DayOffset:        p.DayOffset,
				ViewerDisplay:    p.Display,
				IsAvailable:      !taken,
				Fallback:         p.Fallback,
			},
		})
	}

	// Order by absolute instant; projected strings may wrap past midnight.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].instant.Before(entries[j].instant)
	})
	for _, en := range entries {
		result.Slots = append(result.Slots, en.slot)
	}

	return result, nil
}

// Window returns the bookable calendar as seen at now: from today to the
// look-ahead horizon, in the reference calendar.
func (e *Engine) Window(now time.Time) model.CalendarWindow {
	today := now.In(e.Reference())
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, e.Reference())

	days := make([]string, 0, len(BusinessDays))
	for _, d := range BusinessDays {
		days = append(days, strings.ToLower(d.String()))
	}

	return model.CalendarWindow{
		ReferenceTimezone: e.Reference().String(),
		Today:             start.Format(DateLayout),
		MinDate:           start.Format(DateLayout),
		MaxDate:           start.AddDate(0, e.horizonMonths, 0).Format(DateLayout),
		BusinessDays:      days,
		SlotInterval:      e.catalog.Interval.String(),
		Times:             e.catalog.Times(),
	}
}
