package main

import (
	"context"

	"leadg/internal/appointments/events"
	"leadg/internal/appointments/handler"
	"leadg/internal/appointments/repository"
	"leadg/internal/appointments/service"
	"leadg/internal/appointments/validator"
	"leadg/internal/availability"
	"leadg/pkg/app"
	"leadg/pkg/config"
	"leadg/pkg/kafka"
	kafka_config "leadg/pkg/kafka/config"
	kafkamiddleware "leadg/pkg/kafka/middleware"
)

const ServiceName = "appointments"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()

	cfg.Log.Info("Starting Appointments service")
	serverApp := app.NewApplication(cfg)

	publisher, producer := initPublisher(cfg)
	if producer != nil {
		serverApp.OnShutdown(func(context.Context) {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		})
	}

	appointmentService := initServices(cfg, publisher)
	serverApp.SetApp(handler.NewAppointmentHandler(appointmentService, cfg.Log))
	serverApp.Run()
}

func newEngine(cfg *config.Config) *availability.Engine {
	catalog := availability.Catalog{
		Start:    cfg.SlotWindowStart,
		End:      cfg.SlotWindowEnd,
		Interval: cfg.SlotInterval,
	}
	projector := availability.NewProjector(cfg.ReferenceLocation, nil)
	return availability.NewEngine(catalog, projector, cfg.BookingHorizonMonths)
}

func initPublisher(cfg *config.Config) (events.Publisher, *kafka.Producer) {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, appointment events will not be published")
		return events.NewNoopPublisher(), nil
	}

	kafkaCfg, err := kafka_config.Load(ServiceName)
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	cfg.Log.Info("Kafka configuration loaded", kafkaCfg.LogAttrs()...)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.AppointmentEventsTopic, cfg.AppointmentEventsDLQTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafkamiddleware.LoggingProducerMiddleware(cfg.Log))

	return events.NewKafkaPublisher(producer), producer
}

func initServices(cfg *config.Config, publisher events.Publisher) service.AppointmentService {
	appointmentValidator := validator.NewAppointmentValidator(cfg.Log, cfg.ReferenceLocation)
	appointmentRepo := repository.NewMongoAppointmentRepository(cfg)
	slotLockRepo := repository.NewSlotLockRepository(cfg)
	appointmentService := service.NewAppointmentService(
		appointmentRepo,
		slotLockRepo,
		appointmentValidator,
		newEngine(cfg),
		publisher,
		cfg,
	)

	cfg.Log.Info("Appointment service initialized",
		"database", cfg.MongoDatabaseName,
		"slot_guard", cfg.SlotGuard,
		"reference_timezone", cfg.ReferenceTimezone,
	)
	return appointmentService
}
