package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "leadg"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 64 * 1024 // 64KB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100

	DefaultReferenceTimezone    = "America/New_York"
	DefaultSlotWindowStart      = "12:00"
	DefaultSlotWindowEnd        = "17:00"
	DefaultSlotInterval         = 30 * time.Minute
	DefaultBookingHorizonMonths = 3
	DefaultSlotGuard            = SlotGuardLock
	DefaultSlotLockTTL          = 10 * time.Second

	DefaultCORSAllowedOrigins = "*"

	DefaultRedisDB = 0

	DefaultKafkaEnabled              = false
	DefaultAppointmentEventsTopic    = "appointment-events"
	DefaultAppointmentEventsDLQTopic = "appointment-events-dlq"
	DefaultNotificationsGroupID      = "notifications"
)

// Slot guard modes.
const (
	SlotGuardLock = "lock"
	SlotGuardNone = "none"
)
