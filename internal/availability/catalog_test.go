package availability

import (
	"reflect"
	"testing"
	"time"
)

var defaultCatalog = Catalog{Start: "12:00", End: "17:00", Interval: 30 * time.Minute}

func TestCatalog_Times_Default(t *testing.T) {
	want := []string{
		"12:00", "12:30", "13:00", "13:30", "14:00",
		"14:30", "15:00", "15:30", "16:00", "16:30",
	}

	got := defaultCatalog.Times()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Times() = %v, want %v", got, want)
	}
}

func TestCatalog_Times_Deterministic(t *testing.T) {
	first := defaultCatalog.Times()
	for i := 0; i < 5; i++ {
		if again := defaultCatalog.Times(); !reflect.DeepEqual(first, again) {
			t.Fatalf("call %d returned %v, want %v", i, again, first)
		}
	}
}

func TestCatalog_Times_Intervals(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		want    []string
	}{
		{
			name:    "45 minute interval stops before end",
			catalog: Catalog{Start: "12:00", End: "17:00", Interval: 45 * time.Minute},
			want:    []string{"12:00", "12:45", "13:30", "14:15", "15:00", "15:45", "16:30"},
		},
		{
			name:    "hourly",
			catalog: Catalog{Start: "09:00", End: "12:00", Interval: time.Hour},
			want:    []string{"09:00", "10:00", "11:00"},
		},
		{
			name:    "end exclusive",
			catalog: Catalog{Start: "16:00", End: "17:00", Interval: time.Hour},
			want:    []string{"16:00"},
		},
		{
			name:    "late evening",
			catalog: Catalog{Start: "22:30", End: "23:59", Interval: 30 * time.Minute},
			want:    []string{"22:30", "23:00", "23:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.catalog.Times(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Times() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalog_Times_Degenerate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
	}{
		{"zero interval", Catalog{Start: "12:00", End: "17:00", Interval: 0}},
		{"negative interval", Catalog{Start: "12:00", End: "17:00", Interval: -30 * time.Minute}},
		{"sub-minute interval", Catalog{Start: "12:00", End: "17:00", Interval: 30 * time.Second}},
		{"fractional minute interval", Catalog{Start: "12:00", End: "17:00", Interval: 90 * time.Second}},
		{"end equals start", Catalog{Start: "12:00", End: "12:00", Interval: 30 * time.Minute}},
		{"end before start", Catalog{Start: "17:00", End: "12:00", Interval: 30 * time.Minute}},
		{"bad start", Catalog{Start: "noon", End: "17:00", Interval: 30 * time.Minute}},
		{"bad end", Catalog{Start: "12:00", End: "24:00", Interval: 30 * time.Minute}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.catalog.Times()
			if got == nil {
				t.Fatal("expected empty slice, got nil")
			}
			if len(got) != 0 {
				t.Errorf("expected no times, got %v", got)
			}
		})
	}
}

func TestCatalog_Contains(t *testing.T) {
	if !defaultCatalog.Contains("14:00") {
		t.Error("expected 14:00 in catalog")
	}
	if !defaultCatalog.Contains("16:30") {
		t.Error("expected 16:30 in catalog")
	}
	for _, missing := range []string{"17:00", "11:30", "14:15", "2:00 PM", ""} {
		if defaultCatalog.Contains(missing) {
			t.Errorf("did not expect %q in catalog", missing)
		}
	}
}

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "09:05", "12:30", "23:59"}
	invalid := []string{"", "9:05", "24:00", "12:60", "12-30", "12:30:00", " 12:30"}

	for _, s := range valid {
		if !ValidClock(s) {
			t.Errorf("ValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidClock(s) {
			t.Errorf("ValidClock(%q) = true, want false", s)
		}
	}
}
