package events

import (
	"context"
	"fmt"
	"time"

	"leadg/pkg/kafka"
	"leadg/pkg/model"
)

const source = "appointments"

// Publisher announces appointment lifecycle changes.
type Publisher interface {
	AppointmentCreated(ctx context.Context, appointment *model.Appointment) error
	StatusChanged(ctx context.Context, appointment *model.Appointment, previousStatus string) error
}

// MessagePublisher is satisfied by *kafka.Producer.
type MessagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type kafkaPublisher struct {
	producer MessagePublisher
	now      func() time.Time
}

func NewKafkaPublisher(producer MessagePublisher) Publisher {
	return &kafkaPublisher{
		producer: producer,
		now:      time.Now,
	}
}

func (p *kafkaPublisher) AppointmentCreated(ctx context.Context, appointment *model.Appointment) error {
	return p.publish(ctx, model.AppointmentEvent{
		Type:        model.EventAppointmentCreated,
		Appointment: *appointment,
		OccurredAt:  p.now().UTC(),
	})
}

func (p *kafkaPublisher) StatusChanged(ctx context.Context, appointment *model.Appointment, previousStatus string) error {
	return p.publish(ctx, model.AppointmentEvent{
		Type:           model.EventAppointmentStatusChanged,
		Appointment:    *appointment,
		PreviousStatus: previousStatus,
		OccurredAt:     p.now().UTC(),
	})
}

// Events for the same slot share a key so they land on one partition in order.
func (p *kafkaPublisher) publish(ctx context.Context, event model.AppointmentEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(event.Appointment.Date + "T" + event.Appointment.ReferenceTime).
		WithValue(event).
		WithEventID("").
		WithEventType(event.Type).
		WithSchemaVersion(model.EventSchemaVersion).
		WithSource(source).
		WithCorrelationID(event.Appointment.ID).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build %s event: %w", event.Type, err)
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when Kafka is disabled.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) AppointmentCreated(context.Context, *model.Appointment) error {
	return nil
}

func (noopPublisher) StatusChanged(context.Context, *model.Appointment, string) error {
	return nil
}
