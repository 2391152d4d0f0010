package config

import (
	"fmt"
	"leadg/pkg/client"
	"leadg/pkg/logger"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port     string
	LogLevel string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	ReferenceTimezone    string
	ReferenceLocation    *time.Location
	SlotWindowStart      string
	SlotWindowEnd        string
	SlotInterval         time.Duration
	BookingHorizonMonths int
	SlotGuard            string
	SlotLockTTL          time.Duration

	CORSAllowedOrigins []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaEnabled              bool
	AppointmentEventsTopic    string
	AppointmentEventsDLQTopic string
	NotificationsGroupID      string

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	dotenvErr := godotenv.Load()

	cfg := FromEnv()
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})
	cfg.Client = client.NewClient()

	if dotenvErr != nil {
		cfg.Log.Debug("No .env file loaded, using process environment")
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv reads every setting from the environment without validating it.
func FromEnv() *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		ReferenceTimezone:    getEnvStr(EnvReferenceTimezone, DefaultReferenceTimezone),
		SlotWindowStart:      getEnvStr(EnvSlotWindowStart, DefaultSlotWindowStart),
		SlotWindowEnd:        getEnvStr(EnvSlotWindowEnd, DefaultSlotWindowEnd),
		SlotInterval:         getEnvDuration(EnvSlotInterval, DefaultSlotInterval),
		BookingHorizonMonths: getEnvNum(EnvBookingHorizonMonths, DefaultBookingHorizonMonths),
		SlotGuard:            strings.ToLower(getEnvStr(EnvSlotGuard, DefaultSlotGuard)),
		SlotLockTTL:          getEnvDuration(EnvSlotLockTTL, DefaultSlotLockTTL),

		CORSAllowedOrigins: getEnvList(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins),

		RedisAddr:     getEnvStr(EnvRedisAddr, ""),
		RedisPassword: getEnvStr(EnvRedisPassword, ""),
		RedisDB:       getEnvNum(EnvRedisDB, DefaultRedisDB),

		KafkaEnabled:              getEnvBool(EnvKafkaEnabled, DefaultKafkaEnabled),
		AppointmentEventsTopic:    getEnvStr(EnvAppointmentEventsTopic, DefaultAppointmentEventsTopic),
		AppointmentEventsDLQTopic: getEnvStr(EnvAppointmentEventsDLQTopic, DefaultAppointmentEventsDLQTopic),
		NotificationsGroupID:      getEnvStr(EnvNotificationsGroupID, DefaultNotificationsGroupID),
	}
	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

// SetRedis connects the shared Redis client when REDIS_ADDR is configured.
func (cfg *Config) SetRedis() {
	if cfg.RedisAddr == "" {
		return
	}
	cfg.Client.SetRedis(cfg.Log, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.MongoConnTimeout)
}

// Validate checks every setting, collects all problems and resolves the
// reference timezone on success.
func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
	}
	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}
	if cfg.MongoConnTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	var loc *time.Location
	if cfg.ReferenceTimezone == "" || cfg.ReferenceTimezone == "Local" {
		errors = append(errors, fmt.Sprintf("ReferenceTimezone must be an IANA zone name, got: %q", cfg.ReferenceTimezone))
	} else if l, err := time.LoadLocation(cfg.ReferenceTimezone); err != nil {
		errors = append(errors, fmt.Sprintf("ReferenceTimezone is not a known IANA zone: %s", cfg.ReferenceTimezone))
	} else {
		loc = l
	}

	startOK := timeRegex.MatchString(cfg.SlotWindowStart)
	endOK := timeRegex.MatchString(cfg.SlotWindowEnd)
	if !startOK {
		errors = append(errors, fmt.Sprintf("SlotWindowStart must be in HH:MM format (00:00-23:59), got: %s", cfg.SlotWindowStart))
	}
	if !endOK {
		errors = append(errors, fmt.Sprintf("SlotWindowEnd must be in HH:MM format (00:00-23:59), got: %s", cfg.SlotWindowEnd))
	}
	if startOK && endOK && cfg.SlotWindowEnd <= cfg.SlotWindowStart {
		errors = append(errors, fmt.Sprintf("SlotWindowEnd (%s) must be after SlotWindowStart (%s)", cfg.SlotWindowEnd, cfg.SlotWindowStart))
	}
	if cfg.SlotInterval < time.Minute {
		errors = append(errors, fmt.Sprintf("SlotInterval must be at least 1m, got: %s", cfg.SlotInterval))
	} else if cfg.SlotInterval%time.Minute != 0 {
		errors = append(errors, fmt.Sprintf("SlotInterval must be a whole number of minutes, got: %s", cfg.SlotInterval))
	}
	if cfg.BookingHorizonMonths < 0 {
		errors = append(errors, fmt.Sprintf("BookingHorizonMonths cannot be negative, got: %d", cfg.BookingHorizonMonths))
	}
	if cfg.SlotGuard != SlotGuardLock && cfg.SlotGuard != SlotGuardNone {
		errors = append(errors, fmt.Sprintf("SlotGuard must be one of [%s, %s], got: %s", SlotGuardLock, SlotGuardNone, cfg.SlotGuard))
	}
	if cfg.SlotLockTTL <= 0 {
		errors = append(errors, fmt.Sprintf("SlotLockTTL must be positive, got: %s", cfg.SlotLockTTL))
	}

	if cfg.RedisDB < 0 {
		errors = append(errors, fmt.Sprintf("RedisDB cannot be negative, got: %d", cfg.RedisDB))
	}

	if cfg.KafkaEnabled && cfg.AppointmentEventsTopic == "" {
		errors = append(errors, "AppointmentEventsTopic cannot be empty when Kafka is enabled")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	cfg.ReferenceLocation = loc
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"reference_timezone", cfg.ReferenceTimezone,
		"slot_window_start", cfg.SlotWindowStart,
		"slot_window_end", cfg.SlotWindowEnd,
		"slot_interval", cfg.SlotInterval,
		"booking_horizon_months", cfg.BookingHorizonMonths,
		"slot_guard", cfg.SlotGuard,
		"slot_lock_ttl", cfg.SlotLockTTL,
		"cors_allowed_origins", cfg.CORSAllowedOrigins,
		"redis_enabled", cfg.RedisAddr != "",
		"kafka_enabled", cfg.KafkaEnabled,
		"appointment_events_topic", cfg.AppointmentEventsTopic,
	)
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	raw := getEnvStr(key, fallback)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 || limit > DefaultPaginationLimit {
		return DefaultPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	return max(0, offset)
}
