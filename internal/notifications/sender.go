package notifications

import (
	"context"

	"leadg/pkg/logger"
	"leadg/pkg/model"
)

type Sender interface {
	Send(ctx context.Context, notification *model.Notification) error
}

type logSender struct {
	log *logger.Logger
}

// NewLogSender writes rendered notifications to the service log. It stands in
// for a mail transport.
func NewLogSender(log *logger.Logger) Sender {
	return &logSender{log: log}
}

func (s *logSender) Send(_ context.Context, n *model.Notification) error {
	s.log.Info("Notification ready for delivery",
		"appointment_id", n.AppointmentID,
		"event_type", n.EventType,
		"recipient", n.Recipient,
		"subject", n.Subject,
		"body", n.Body,
	)
	return nil
}
