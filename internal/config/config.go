// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // BOOKING_TIMEZONE must resolve in minimal images

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full service configuration.
type Config struct {
	Service   ServiceConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	SlipOK    SlipOKConfig
	RabbitMQ  RabbitMQConfig
	NATS      NATSConfig
	Booking   BookingConfig
	Retention RetentionConfig
	Tracing   TracingConfig
}

type ServiceConfig struct {
	Name        string `envconfig:"SERVICE_NAME" default:"be-hotel-bookings"`
	Version     string `envconfig:"SERVICE_VERSION" default:"0.1.0"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port            int           `envconfig:"HTTP_PORT" default:"8080"`
	GRPCPort        int           `envconfig:"GRPC_PORT" default:"9090"`
	ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"20s"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"*"`
}

type DatabaseConfig struct {
	Host        string        `envconfig:"DB_HOST" default:"localhost"`
	Port        int           `envconfig:"DB_PORT" default:"5432"`
	User        string        `envconfig:"DB_USER" default:"postgres"`
	Password    string        `envconfig:"DB_PASSWORD"`
	Database    string        `envconfig:"DB_NAME" default:"hotel"`
	SSLMode     string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns    int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnTime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE" default:"30m"`
	HealthCheck time.Duration `envconfig:"DB_HEALTH_CHECK" default:"1m"`
	AutoMigrate bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
}

type SlipOKConfig struct {
	APIURL        string        `envconfig:"SLIPOK_API_URL" default:"https://api.slipok.com/api/line/apikey"`
	BranchID      string        `envconfig:"SLIPOK_BRANCH_ID"`
	APIKey        string        `envconfig:"SLIPOK_API_KEY"`
	PublicBaseURL string        `envconfig:"SLIP_PUBLIC_BASE_URL"`
	Timeout       time.Duration `envconfig:"SLIPOK_TIMEOUT" default:"30s"`
}

type RabbitMQConfig struct {
	URL        string `envconfig:"RABBITMQ_URL"`
	Exchange   string `envconfig:"RABBITMQ_EXCHANGE" default:"bookings"`
	Queue      string `envconfig:"RABBITMQ_VERIFY_QUEUE" default:"bookings.slip-verification"`
	RoutingKey string `envconfig:"RABBITMQ_VERIFY_KEY" default:"slip.verify"`
	Prefetch   int    `envconfig:"RABBITMQ_PREFETCH" default:"8"`
	// Workers bounds the in-process pool used when RABBITMQ_URL is empty.
	Workers int `envconfig:"VERIFY_WORKERS" default:"4"`
}

type NATSConfig struct {
	URL       string `envconfig:"NATS_URL"`
	JetStream bool   `envconfig:"NATS_JETSTREAM" default:"true"`
}

type BookingConfig struct {
	DepositRate            float64 `envconfig:"DEPOSIT_RATE" default:"0.30"`
	CancellationWindowDays int     `envconfig:"CANCELLATION_WINDOW_DAYS" default:"0"`
	SlipURLPrefix          string  `envconfig:"SLIP_URL_PREFIX" default:"/storage/slips/"`
	MaxSlipsPerBooking     int     `envconfig:"MAX_SLIPS_PER_BOOKING" default:"10"`
	TimeZone               string  `envconfig:"BOOKING_TIMEZONE" default:"Asia/Bangkok"`
}

type RetentionConfig struct {
	PurgeSpec         string        `envconfig:"AUDIT_PURGE_CRON" default:"0 3 * * *"`
	AuditDays         int           `envconfig:"AUDIT_RETENTION_DAYS" default:"365"`
	RedispatchSpec    string        `envconfig:"PENDING_REDISPATCH_CRON" default:"*/10 * * * *"`
	StalePendingAfter time.Duration `envconfig:"STALE_PENDING_AFTER" default:"15m"`
}

type TracingConfig struct {
	Enabled     bool    `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRatio float64 `envconfig:"OTEL_SAMPLE_RATIO" default:"1"`
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.Booking.DepositRate <= 0 || c.Booking.DepositRate > 1 {
		return fmt.Errorf("DEPOSIT_RATE must be in (0, 1], got %v", c.Booking.DepositRate)
	}
	if c.Booking.CancellationWindowDays < 0 {
		return fmt.Errorf("CANCELLATION_WINDOW_DAYS must not be negative")
	}
	if c.Booking.SlipURLPrefix == "" {
		return fmt.Errorf("SLIP_URL_PREFIX must not be empty")
	}
	if _, err := time.LoadLocation(c.Booking.TimeZone); err != nil {
		return fmt.Errorf("BOOKING_TIMEZONE: %w", err)
	}
	if c.Retention.AuditDays < 0 {
		return fmt.Errorf("AUDIT_RETENTION_DAYS must not be negative")
	}
	return nil
}

// Location returns the booking time zone. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Booking.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
