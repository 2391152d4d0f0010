package availability

import (
	"errors"
	"testing"
	"time"
)

func newTestProjector(t *testing.T) *Projector {
	t.Helper()
	return NewProjector(mustLoad(t, "America/New_York"), nil)
}

func TestProject_DhakaSummerAndWinter(t *testing.T) {
	p := newTestProjector(t)

	tests := []struct {
		name       string
		date       string
		refTime    string
		wantTime   string
		wantDate   string
		wantOffset int
	}{
		// EDT (UTC-4) to UTC+6: ten hours ahead.
		{"edt noon", "2024-03-12", "12:00", "22:00", "2024-03-12", 0},
		{"edt wraps midnight", "2024-03-12", "14:00", "00:00", "2024-03-13", 1},
		{"edt last slot", "2024-03-12", "16:30", "02:30", "2024-03-13", 1},
		// EST (UTC-5) to UTC+6: eleven hours ahead.
		{"est noon", "2024-01-16", "12:00", "23:00", "2024-01-16", 0},
		{"est wraps earlier", "2024-01-16", "13:00", "00:00", "2024-01-17", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Project(tt.date, tt.refTime, "Asia/Dhaka")
			if err != nil {
				t.Fatalf("Project: %v", err)
			}
			if got.Time != tt.wantTime || got.Date != tt.wantDate || got.DayOffset != tt.wantOffset {
				t.Errorf("got %s %s (%+d), want %s %s (%+d)",
					got.Date, got.Time, got.DayOffset, tt.wantDate, tt.wantTime, tt.wantOffset)
			}
			if got.Fallback {
				t.Error("unexpected fallback")
			}
			if got.Zone != "Asia/Dhaka" {
				t.Errorf("zone = %s", got.Zone)
			}
		})
	}
}

func TestProject_UsesOffsetOfThatDate(t *testing.T) {
	p := newTestProjector(t)

	// US DST starts 2024-03-10, UK DST starts 2024-03-31.
	before, err := p.Project("2024-03-08", "12:00", "Europe/London")
	if err != nil {
		t.Fatal(err)
	}
	after, err := p.Project("2024-03-12", "12:00", "Europe/London")
	if err != nil {
		t.Fatal(err)
	}

	if before.Time != "17:00" {
		t.Errorf("before US DST: got %s, want 17:00", before.Time)
	}
	if after.Time != "16:00" {
		t.Errorf("between US and UK DST: got %s, want 16:00", after.Time)
	}
}

func TestProject_FractionalOffsets(t *testing.T) {
	p := newTestProjector(t)

	tests := []struct {
		zone       string
		refTime    string
		wantTime   string
		wantOffset int
	}{
		{"Asia/Kolkata", "12:00", "22:30", 0},
		{"Asia/Kolkata", "13:30", "00:00", 1},
		{"Asia/Kathmandu", "12:00", "22:45", 0},
		{"Asia/Kathmandu", "13:30", "00:15", 1},
	}

	for _, tt := range tests {
		t.Run(tt.zone+" "+tt.refTime, func(t *testing.T) {
			got, err := p.Project("2024-01-16", tt.refTime, tt.zone)
			if err != nil {
				t.Fatal(err)
			}
			if got.Time != tt.wantTime || got.DayOffset != tt.wantOffset {
				t.Errorf("got %s (%+d), want %s (%+d)", got.Time, got.DayOffset, tt.wantTime, tt.wantOffset)
			}
		})
	}
}

func TestProject_Fallback(t *testing.T) {
	p := newTestProjector(t)

	for _, zone := range []string{"", "   ", "Local", "Not/AZone", "EST5EDT+garbage"} {
		t.Run(zone, func(t *testing.T) {
			got, err := p.Project("2024-03-12", "14:00", zone)
			if err != nil {
				t.Fatalf("fallback must not fail, got %v", err)
			}
			if !got.Fallback {
				t.Error("expected fallback flag")
			}
			if got.Time != "14:00" || got.Date != "2024-03-12" || got.DayOffset != 0 {
				t.Errorf("expected reference wall clock, got %s %s", got.Date, got.Time)
			}
			if got.Zone != "America/New_York" {
				t.Errorf("expected reference zone, got %s", got.Zone)
			}
		})
	}
}

func TestProject_InvalidInput(t *testing.T) {
	p := newTestProjector(t)

	if _, err := p.Project("2024-02-30", "12:00", "UTC"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := p.Project("2024-03-12", "25:00", "UTC"); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime, got %v", err)
	}
}

func TestProject_CustomResolver(t *testing.T) {
	calls := 0
	resolver := func(name string) (*time.Location, error) {
		calls++
		return time.FixedZone(name, 2*3600), nil
	}
	p := NewProjector(time.UTC, resolver)

	got, err := p.Project("2024-03-12", "12:00", "Custom/Plus2")
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("expected resolver to be used once, got %d", calls)
	}
	if got.Time != "14:00" {
		t.Errorf("got %s, want 14:00", got.Time)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	p := newTestProjector(t)
	catalog := Catalog{Start: "12:00", End: "17:00", Interval: 30 * time.Minute}

	zones := []string{"Asia/Dhaka", "Asia/Kolkata", "Asia/Kathmandu", "Pacific/Kiritimati", "Pacific/Honolulu", "Europe/London"}
	dates := []string{"2024-01-16", "2024-03-08", "2024-03-12", "2024-07-09", "2024-11-01", "2024-11-04"}

	for _, zone := range zones {
		for _, date := range dates {
			for _, ref := range catalog.Times() {
				out, err := p.Convert(date, ref, "America/New_York", zone)
				if err != nil {
					t.Fatalf("%s %s -> %s: %v", date, ref, zone, err)
				}
				back, err := p.Convert(out.Date, out.Time, zone, "America/New_York")
				if err != nil {
					t.Fatalf("%s %s <- %s: %v", out.Date, out.Time, zone, err)
				}
				if back.Date != date || back.Time != ref {
					t.Errorf("%s: %s %s -> %s %s -> %s %s", zone, date, ref, out.Date, out.Time, back.Date, back.Time)
				}
				if back.DayOffset != -out.DayOffset {
					t.Errorf("%s: day offsets not symmetric: %d vs %d", zone, out.DayOffset, back.DayOffset)
				}
			}
		}
	}
}

func TestConvert_PreviousDay(t *testing.T) {
	p := newTestProjector(t)

	got, err := p.Convert("2024-01-16", "08:00", "Asia/Tokyo", "America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	if got.Date != "2024-01-15" || got.Time != "18:00" || got.DayOffset != -1 {
		t.Errorf("got %s %s (%+d), want 2024-01-15 18:00 (-1)", got.Date, got.Time, got.DayOffset)
	}
}

func TestConvert_UnknownZoneFails(t *testing.T) {
	p := newTestProjector(t)

	if _, err := p.Convert("2024-03-12", "12:00", "America/New_York", ""); !errors.Is(err, ErrUnknownTimezone) {
		t.Errorf("expected ErrUnknownTimezone, got %v", err)
	}
	if _, err := p.Convert("2024-03-12", "12:00", "Nowhere/Land", "UTC"); !errors.Is(err, ErrUnknownTimezone) {
		t.Errorf("expected ErrUnknownTimezone, got %v", err)
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := map[string]string{
		"12:00": "12:00 PM",
		"12:30": "12:30 PM",
		"13:00": "1:00 PM",
		"16:30": "4:30 PM",
		"00:15": "12:15 AM",
		"09:05": "9:05 AM",
	}
	for in, want := range tests {
		got, err := FormatDisplay(in)
		if err != nil {
			t.Fatalf("FormatDisplay(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("FormatDisplay(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := FormatDisplay("4pm"); err == nil {
		t.Error("expected error for malformed clock")
	}
}
