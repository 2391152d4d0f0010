package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		MongoURI:             DefaultMongoURI,
		MongoDatabaseName:    DefaultMongoDatabaseName,
		MongoConnTimeout:     DefaultMongoConnTimeout,
		Port:                 DefaultPort,
		RateLimitRequests:    DefaultRateLimitRequests,
		RateLimitWindow:      DefaultRateLimitWindow,
		RequestTimeout:       DefaultRequestTimeout,
		IdempotencyTTL:       DefaultIdempotencyTTL,
		MaxRequestSize:       DefaultMaxRequestSize,
		ReadTimeout:          DefaultReadTimeout,
		WriteTimeout:         DefaultWriteTimeout,
		IdleTimeout:          DefaultIdleTimeout,
		ShutdownTimeout:      DefaultShutdownTimeout,
		ReferenceTimezone:    DefaultReferenceTimezone,
		SlotWindowStart:      DefaultSlotWindowStart,
		SlotWindowEnd:        DefaultSlotWindowEnd,
		SlotInterval:         DefaultSlotInterval,
		BookingHorizonMonths: DefaultBookingHorizonMonths,
		SlotGuard:            DefaultSlotGuard,
		SlotLockTTL:          DefaultSlotLockTTL,
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got: %v", err)
	}
	if cfg.ReferenceLocation == nil || cfg.ReferenceLocation.String() != "America/New_York" {
		t.Errorf("expected reference location to be resolved, got %v", cfg.ReferenceLocation)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Port = "99999" },
			wantMsg: "Port must be between",
		},
		{
			name:    "bad mongo uri",
			mutate:  func(c *Config) { c.MongoURI = "postgres://localhost" },
			wantMsg: "MongoURI must start with",
		},
		{
			name:    "unknown timezone",
			mutate:  func(c *Config) { c.ReferenceTimezone = "Mars/Olympus" },
			wantMsg: "ReferenceTimezone is not a known IANA zone",
		},
		{
			name:    "local timezone",
			mutate:  func(c *Config) { c.ReferenceTimezone = "Local" },
			wantMsg: "ReferenceTimezone must be an IANA zone name",
		},
		{
			name:    "window start format",
			mutate:  func(c *Config) { c.SlotWindowStart = "12pm" },
			wantMsg: "SlotWindowStart must be in HH:MM format",
		},
		{
			name: "window inverted",
			mutate: func(c *Config) {
				c.SlotWindowStart = "17:00"
				c.SlotWindowEnd = "12:00"
			},
			wantMsg: "must be after SlotWindowStart",
		},
		{
			name:    "interval too small",
			mutate:  func(c *Config) { c.SlotInterval = 30 * time.Second },
			wantMsg: "SlotInterval must be at least 1m",
		},
		{
			name:    "interval not whole minutes",
			mutate:  func(c *Config) { c.SlotInterval = 90 * time.Second },
			wantMsg: "SlotInterval must be a whole number of minutes",
		},
		{
			name:    "unknown guard",
			mutate:  func(c *Config) { c.SlotGuard = "mutex" },
			wantMsg: "SlotGuard must be one of",
		},
		{
			name:    "kafka without topic",
			mutate:  func(c *Config) { c.KafkaEnabled = true; c.AppointmentEventsTopic = "" },
			wantMsg: "AppointmentEventsTopic cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got: %v", tt.wantMsg, err)
			}
			if cfg.ReferenceLocation != nil {
				t.Error("reference location must stay unset when validation fails")
			}
		})
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "0"
	cfg.SlotGuard = "bogus"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "1. ") || !strings.Contains(err.Error(), "2. ") {
		t.Errorf("expected numbered list of errors, got: %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvReferenceTimezone, "Europe/London")
	t.Setenv(EnvSlotInterval, "45m")
	t.Setenv(EnvSlotGuard, "NONE")
	t.Setenv(EnvCORSAllowedOrigins, "https://a.example, https://b.example ,")
	t.Setenv(EnvKafkaEnabled, "true")
	t.Setenv(EnvBookingHorizonMonths, "not-a-number")

	cfg := FromEnv()

	if cfg.ReferenceTimezone != "Europe/London" {
		t.Errorf("ReferenceTimezone = %s", cfg.ReferenceTimezone)
	}
	if cfg.SlotInterval != 45*time.Minute {
		t.Errorf("SlotInterval = %s", cfg.SlotInterval)
	}
	if cfg.SlotGuard != SlotGuardNone {
		t.Errorf("SlotGuard = %s", cfg.SlotGuard)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.KafkaEnabled {
		t.Error("expected KafkaEnabled")
	}
	if cfg.BookingHorizonMonths != DefaultBookingHorizonMonths {
		t.Errorf("expected fallback horizon, got %d", cfg.BookingHorizonMonths)
	}
}

func TestNormalizePaginationLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultPaginationLimit},
		{-5, DefaultPaginationLimit},
		{25, 25},
		{DefaultPaginationLimit + 1, DefaultPaginationLimit},
	}
	for _, tt := range tests {
		if got := NormalizePaginationLimit(tt.in); got != tt.want {
			t.Errorf("NormalizePaginationLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if NormalizeOffset(-3) != 0 {
		t.Error("expected negative offset to clamp to 0")
	}
}

func TestRedactMongoURI(t *testing.T) {
	got := redactMongoURI("mongodb://admin:secret@db:27017")
	if strings.Contains(got, "secret") {
		t.Errorf("expected credentials redacted, got %s", got)
	}
}
