package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadg/internal/availability"
	"leadg/internal/notifications"
	"leadg/pkg/config"
	"leadg/pkg/kafka"
	kafka_config "leadg/pkg/kafka/config"
	kafkamiddleware "leadg/pkg/kafka/middleware"
)

const (
	ServiceName = "notifications"

	dedupeTTL = 7 * 24 * time.Hour
)

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetRedis()
	defer cfg.GracefulShutdown()

	kafkaCfg, err := kafka_config.Load(ServiceName)
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	cfg.Log.Info("Kafka configuration loaded", kafkaCfg.LogAttrs()...)

	var dedupe notifications.Deduplicator
	if cfg.Client.Redis != nil {
		dedupe = notifications.NewRedisDeduplicator(cfg.Client.Redis, dedupeTTL)
	} else {
		dedupe = notifications.NewMemoryDeduplicator(dedupeTTL)
	}

	renderer := notifications.NewRenderer(availability.NewProjector(cfg.ReferenceLocation, nil))
	svc := notifications.NewService(renderer, notifications.NewLogSender(cfg.Log), dedupe, cfg.Log)

	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.AppointmentEventsTopic,
		cfg.NotificationsGroupID,
		cfg.AppointmentEventsDLQTopic,
		svc.Handle,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	metrics := kafkamiddleware.NewMetrics()
	consumer.Use(kafkamiddleware.LoggingConsumerMiddleware(cfg.Log))
	consumer.Use(metrics.ConsumerMiddleware())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Starting Notifications consumer",
		"topic", cfg.AppointmentEventsTopic,
		"group_id", cfg.NotificationsGroupID,
	)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close Kafka consumer", "error", err)
	}

	snapshot := metrics.Snapshot()
	cfg.Log.Info("Notifications consumer stopped",
		"succeeded", snapshot.Succeeded,
		"failed", snapshot.Failed,
		"avg_duration", snapshot.AvgDuration,
	)
}
