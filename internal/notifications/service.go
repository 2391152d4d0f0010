package notifications

import (
	"context"

	"leadg/pkg/kafka"
	"leadg/pkg/logger"
	"leadg/pkg/model"
)

type Service struct {
	renderer *Renderer
	sender   Sender
	dedupe   Deduplicator
	log      *logger.Logger
}

func NewService(renderer *Renderer, sender Sender, dedupe Deduplicator, log *logger.Logger) *Service {
	return &Service{
		renderer: renderer,
		sender:   sender,
		dedupe:   dedupe,
		log:      log,
	}
}

// Handle is the kafka.MessageHandler for the appointment events topic.
// Undecodable or unrenderable events are permanent failures; delivery
// failures are transient and retried by the consumer.
func (s *Service) Handle(ctx context.Context, msg kafka.Message) error {
	var event model.AppointmentEvent
	if err := msg.DecodeValue(&event); err != nil {
		return err
	}

	notification, ok, err := s.renderer.Render(event)
	if err != nil {
		return kafka.NewPermanentError("failed to render notification", err)
	}
	if !ok {
		s.log.Debug("No notification for event",
			"event_type", event.Type,
			"status", event.Appointment.Status,
			"appointment_id", event.Appointment.ID,
		)
		return nil
	}

	key := dedupeKey(msg, event)
	first, err := s.dedupe.Claim(ctx, key)
	if err != nil {
		s.log.Warn("Notification dedupe unavailable, sending anyway", "key", key, "error", err)
		first = true
	}
	if !first {
		s.log.Info("Duplicate event skipped", "key", key, "appointment_id", event.Appointment.ID)
		return nil
	}

	if err := s.sender.Send(ctx, notification); err != nil {
		if releaseErr := s.dedupe.Release(context.WithoutCancel(ctx), key); releaseErr != nil {
			s.log.Warn("Failed to release dedupe key", "key", key, "error", releaseErr)
		}
		return kafka.NewTransientError("failed to send notification", err)
	}

	s.log.Info("Notification sent",
		"appointment_id", event.Appointment.ID,
		"event_type", event.Type,
		"status", event.Appointment.Status,
	)
	return nil
}

func dedupeKey(msg kafka.Message, event model.AppointmentEvent) string {
	if id := msg.GetEventID(); id != "" {
		return id
	}
	return event.Appointment.ID + ":" + event.Type + ":" + event.Appointment.Status
}
