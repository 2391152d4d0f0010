package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadg/pkg/kafka"
	"leadg/pkg/model"
)

type mockProducer struct {
	publishFunc func(ctx context.Context, msg kafka.Message) error
	published   []kafka.Message
}

func (m *mockProducer) Publish(ctx context.Context, msg kafka.Message) error {
	m.published = append(m.published, msg)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, msg)
	}
	return nil
}

func TestKafkaPublisher_AppointmentCreated(t *testing.T) {
	producer := &mockProducer{}
	p := NewKafkaPublisher(producer).(*kafkaPublisher)
	p.now = func() time.Time { return time.Date(2024, 3, 11, 15, 0, 0, 0, time.UTC) }

	appt := &model.Appointment{ID: "65f0c0ffee", Date: "2024-03-12", ReferenceTime: "14:00", Status: "pending"}
	if err := p.AppointmentCreated(context.Background(), appt); err != nil {
		t.Fatal(err)
	}

	if len(producer.published) != 1 {
		t.Fatalf("published %d messages", len(producer.published))
	}
	msg := producer.published[0]
	if msg.Key != "2024-03-12T14:00" {
		t.Errorf("key = %s", msg.Key)
	}
	if msg.GetEventType() != model.EventAppointmentCreated || msg.GetCorrelationID() != "65f0c0ffee" {
		t.Errorf("headers = %v", msg.Headers)
	}

	var event model.AppointmentEvent
	if err := msg.DecodeValue(&event); err != nil {
		t.Fatal(err)
	}
	if event.Appointment.ReferenceTime != "14:00" || !event.OccurredAt.Equal(p.now()) {
		t.Errorf("event = %+v", event)
	}
}

func TestKafkaPublisher_StatusChangedCarriesPrevious(t *testing.T) {
	producer := &mockProducer{}
	p := NewKafkaPublisher(producer)

	appt := &model.Appointment{ID: "x", Date: "2024-03-12", ReferenceTime: "14:00", Status: "cancelled"}
	if err := p.StatusChanged(context.Background(), appt, "confirmed"); err != nil {
		t.Fatal(err)
	}

	var event model.AppointmentEvent
	_ = producer.published[0].DecodeValue(&event)
	if event.Type != model.EventAppointmentStatusChanged || event.PreviousStatus != "confirmed" {
		t.Errorf("event = %+v", event)
	}
}

func TestKafkaPublisher_WrapsPublishError(t *testing.T) {
	brokerErr := errors.New("broker down")
	p := NewKafkaPublisher(&mockProducer{
		publishFunc: func(context.Context, kafka.Message) error { return brokerErr },
	})

	err := p.AppointmentCreated(context.Background(), &model.Appointment{Date: "2024-03-12", ReferenceTime: "12:00"})
	if !errors.Is(err, brokerErr) {
		t.Errorf("expected wrapped broker error, got %v", err)
	}
}
