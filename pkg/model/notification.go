package model

// Notification is a rendered message for the visitor who booked.
type Notification struct {
	AppointmentID string `json:"appointment_id"`
	EventType     string `json:"event_type"`
	Recipient     string `json:"recipient"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
}
