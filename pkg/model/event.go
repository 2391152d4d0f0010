package model

import "time"

const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentStatusChanged = "appointment.status_changed"

	EventSchemaVersion = "1"
)

// AppointmentEvent is published to the appointment events topic whenever an
// appointment is stored or changes status.
type AppointmentEvent struct {
	Type           string      `json:"type"`
	Appointment    Appointment `json:"appointment"`
	PreviousStatus string      `json:"previous_status,omitempty"`
	OccurredAt     time.Time   `json:"occurred_at"`
}
