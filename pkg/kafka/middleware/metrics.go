package kafka_middleware

import (
	"context"
	"sync/atomic"
	"time"

	"leadg/pkg/kafka"
)

// Metrics counts messages passing through a producer or consumer.
type Metrics struct {
	succeeded     atomic.Int64
	failed        atomic.Int64
	durationTotal atomic.Int64
}

type MetricsSnapshot struct {
	Succeeded   int64         `json:"succeeded"`
	Failed      int64         `json:"failed"`
	AvgDuration time.Duration `json:"avg_duration_ns"`
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	succeeded := m.succeeded.Load()
	failed := m.failed.Load()

	var avg time.Duration
	if total := succeeded + failed; total > 0 {
		avg = time.Duration(m.durationTotal.Load() / total)
	}
	return MetricsSnapshot{Succeeded: succeeded, Failed: failed, AvgDuration: avg}
}

func (m *Metrics) observe(start time.Time, err error) {
	m.durationTotal.Add(int64(time.Since(start)))
	if err != nil {
		m.failed.Add(1)
	} else {
		m.succeeded.Add(1)
	}
}

func (m *Metrics) ProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)
		m.observe(start, err)
		return err
	}
}

func (m *Metrics) ConsumerMiddleware() kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)
		m.observe(start, err)
		return err
	}
}
