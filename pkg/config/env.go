package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvReferenceTimezone    = "REFERENCE_TIMEZONE"
	EnvSlotWindowStart      = "SLOT_WINDOW_START"
	EnvSlotWindowEnd        = "SLOT_WINDOW_END"
	EnvSlotInterval         = "SLOT_INTERVAL"
	EnvBookingHorizonMonths = "BOOKING_HORIZON_MONTHS"
	EnvSlotGuard            = "SLOT_GUARD"
	EnvSlotLockTTL          = "SLOT_LOCK_TTL"

	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"

	EnvKafkaEnabled              = "KAFKA_ENABLED"
	EnvAppointmentEventsTopic    = "APPOINTMENT_EVENTS_TOPIC"
	EnvAppointmentEventsDLQTopic = "APPOINTMENT_EVENTS_DLQ_TOPIC"
	EnvNotificationsGroupID      = "NOTIFICATIONS_GROUP_ID"
)
