package notifications

import (
	"fmt"
	"strings"
	"time"

	"leadg/internal/availability"
	"leadg/pkg/locale"
	"leadg/pkg/model"
)

const longDateLayout = "Monday, January 2, 2006"

// Renderer turns appointment events into visitor-facing text, with the
// appointment time shown in the zone the visitor booked from. Visitors who
// sent no zone get one inferred from their phone country code.
type Renderer struct {
	projector *availability.Projector
}

func NewRenderer(projector *availability.Projector) *Renderer {
	return &Renderer{projector: projector}
}

// Render returns false when the event does not warrant a notification.
func (r *Renderer) Render(event model.AppointmentEvent) (*model.Notification, bool, error) {
	a := event.Appointment

	var subject, lead string
	switch {
	case event.Type == model.EventAppointmentCreated:
		subject = "We received your consultation request"
		lead = "Thanks for booking a consultation with us. We have your request for"
	case event.Type == model.EventAppointmentStatusChanged && a.Status == model.AppointmentStatusConfirmed:
		subject = "Your consultation is confirmed"
		lead = "Good news, your consultation is confirmed for"
	case event.Type == model.EventAppointmentStatusChanged && a.Status == model.AppointmentStatusCancelled:
		subject = "Your consultation was cancelled"
		lead = "Your consultation has been cancelled. It was scheduled for"
	default:
		return nil, false, nil
	}

	when, err := r.describe(a)
	if err != nil {
		return nil, false, err
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n%s %s.\n", firstName(a.Name), lead, when)
	if event.Type == model.EventAppointmentCreated {
		body.WriteString("\nWe will confirm your appointment shortly.\n")
	}

	return &model.Notification{
		AppointmentID: a.ID,
		EventType:     event.Type,
		Recipient:     a.Email,
		Subject:       subject,
		Body:          body.String(),
	}, true, nil
}

func (r *Renderer) describe(a model.Appointment) (string, error) {
	zone := a.ViewerTimezone
	if a.ViewerFallback || strings.TrimSpace(zone) == "" {
		zone = locale.InferTimezoneFromPhone(a.Phone)
	}

	viewer, err := r.projector.Project(a.Date, a.ReferenceTime, zone)
	if err != nil {
		return "", err
	}
	reference, err := r.projector.Project(a.Date, a.ReferenceTime, r.projector.Reference().String())
	if err != nil {
		return "", err
	}

	when := fmt.Sprintf("%s at %s (%s)", longDate(viewer.Date), viewer.Display, viewer.Zone)
	if viewer.Fallback || viewer.Zone == reference.Zone {
		return when, nil
	}
	return fmt.Sprintf("%s, which is %s at %s %s", when, longDate(reference.Date), reference.Display, reference.Zone), nil
}

// longDate spells out a projected YYYY-MM-DD calendar date.
func longDate(date string) string {
	t, err := time.Parse(availability.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(longDateLayout)
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return "there"
}
