package model

import (
	"time"
)

// Appointment is a stored consultation booking. Date and ReferenceTime are
// always expressed in the reference timezone; viewer fields are display only.
type Appointment struct {
	ID               string `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string `json:"name" bson:"name"`
	Email            string `json:"email" bson:"email"`
	Phone            string `json:"phone" bson:"phone"`
	Company          string `json:"company,omitempty" bson:"company,omitempty"`
	Industry         string `json:"industry,omitempty" bson:"industry,omitempty"`
	ServiceInterests string `json:"service_interests,omitempty" bson:"service_interests,omitempty"`
	Message          string `json:"message,omitempty" bson:"message,omitempty"`

	Date              string `json:"date" bson:"date"`
	ReferenceTime     string `json:"reference_time" bson:"reference_time"`
	ReferenceTimezone string `json:"reference_timezone" bson:"reference_timezone"`
	ReferenceDisplay  string `json:"reference_display" bson:"reference_display"`
	ViewerTimezone    string `json:"viewer_timezone,omitempty" bson:"viewer_timezone,omitempty"`
	ViewerDate        string `json:"viewer_date,omitempty" bson:"viewer_date,omitempty"`
	ViewerTime        string `json:"viewer_time,omitempty" bson:"viewer_time,omitempty"`
	ViewerDisplay     string `json:"viewer_display,omitempty" bson:"viewer_display,omitempty"`
	// ViewerFallback is set when the submitted zone could not be used and the
	// viewer fields hold reference-zone values.
	ViewerFallback bool `json:"viewer_fallback,omitempty" bson:"viewer_fallback,omitempty"`

	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Occupies reports whether the appointment blocks its slot.
func (a *Appointment) Occupies() bool {
	return a.Status != AppointmentStatusCancelled
}

// AppointmentInput is the visitor submission. Field order is the order in
// which validation failures are reported.
type AppointmentInput struct {
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Email            string `json:"email" validate:"required,lead_email,max=254"`
	Phone            string `json:"phone" validate:"required,lead_phone"`
	Date             string `json:"date" validate:"required,iso_date,business_day"`
	ReferenceTime    string `json:"reference_time" validate:"required,hhmm"`
	ViewerTimezone   string `json:"timezone,omitempty" validate:"omitempty,max=64"`
	Company          string `json:"company,omitempty" validate:"omitempty,max=100"`
	Industry         string `json:"industry,omitempty" validate:"omitempty,max=50"`
	ServiceInterests string `json:"service_interests,omitempty" validate:"omitempty,max=200"`
	Message          string `json:"message,omitempty" validate:"omitempty,max=1000"`
}

type StatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type AppointmentFilter struct {
	Date   string
	Status string
	Limit  int
	Offset int64
}

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

var AppointmentStatuses = []string{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}
