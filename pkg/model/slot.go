package model

// Slot is a catalog time on a date, projected for one viewer. It is derived on
// every request and never persisted.
type Slot struct {
	ReferenceTime    string `json:"reference_time"`
	ReferenceDisplay string `json:"reference_display"`
	ViewerTime       string `json:"viewer_time"`
	ViewerDate       string `json:"viewer_date"`
	DayOffset        int    `json:"day_offset"`
	ViewerDisplay    string `json:"viewer_display"`
	IsAvailable      bool   `json:"is_available"`
	Fallback         bool   `json:"fallback"`
}

type Availability struct {
	Date              string   `json:"date"`
	ReferenceTimezone string   `json:"reference_timezone"`
	ViewerTimezone    string   `json:"viewer_timezone"`
	BusinessDay       bool     `json:"business_day"`
	Fallback          bool     `json:"fallback"`
	Slots             []Slot   `json:"slots"`
	BookedTimes       []string `json:"booked_times"`
}

// CalendarWindow describes what the booking form may offer.
type CalendarWindow struct {
	ReferenceTimezone string   `json:"reference_timezone"`
	Today             string   `json:"today"`
	MinDate           string   `json:"min_date"`
	MaxDate           string   `json:"max_date"`
	BusinessDays      []string `json:"business_days"`
	SlotInterval      string   `json:"slot_interval"`
	Times             []string `json:"times"`
}
