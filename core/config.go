package core

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the FoodNow client.
// It supports three-layer configuration priority:
//  1. Default values (lowest priority)
//  2. Environment variables (medium priority)
//  3. Functional options (highest priority)
//
// Example usage:
//
//	cfg, err := core.NewConfig(
//	    core.WithBaseURL("https://api.foodnow.example/api"),
//	    core.WithPollInterval(10*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
type Config struct {
	// BaseURL is the backend API root, including the /api prefix
	BaseURL string `json:"base_url" env:"FOODNOW_BASE_URL"`

	// HTTPTimeout bounds every single API call
	HTTPTimeout time.Duration `json:"http_timeout" env:"FOODNOW_HTTP_TIMEOUT"`

	// PollInterval is the dashboard refresh cadence
	PollInterval time.Duration `json:"poll_interval" env:"FOODNOW_POLL_INTERVAL"`

	// DeliverySimDuration is the simulated courier travel time used by
	// order tracking when the backend reports OUT_FOR_DELIVERY
	DeliverySimDuration time.Duration `json:"delivery_sim_duration" env:"FOODNOW_DELIVERY_SIM_DURATION"`

	// ToastDuration is how long non-loading toasts stay visible
	ToastDuration time.Duration `json:"toast_duration" env:"FOODNOW_TOAST_DURATION"`

	// Session configures token persistence
	Session SessionConfig `json:"session"`

	// Logging configures the default JSON logger
	Logging LoggingConfig `json:"logging"`

	// Telemetry configures optional OpenTelemetry tracing
	Telemetry TelemetryConfig `json:"telemetry"`
}

// SessionConfig configures token persistence. With an empty RedisURL the
// token lives in process memory only.
type SessionConfig struct {
	RedisURL string        `json:"redis_url" env:"FOODNOW_SESSION_REDIS_URL,REDIS_URL"`
	TTL      time.Duration `json:"ttl" env:"FOODNOW_SESSION_TTL"`
}

// LoggingConfig controls the built-in logger
type LoggingConfig struct {
	Level  string `json:"level" env:"FOODNOW_LOG_LEVEL"`
	Format string `json:"format" env:"FOODNOW_LOG_FORMAT"`
}

// TelemetryConfig controls optional OTel tracing of API calls.
// Disabled by default.
type TelemetryConfig struct {
	Enabled     bool   `json:"enabled" env:"FOODNOW_TELEMETRY_ENABLED"`
	Endpoint    string `json:"endpoint" env:"FOODNOW_TELEMETRY_ENDPOINT,OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `json:"service_name" env:"FOODNOW_TELEMETRY_SERVICE_NAME,OTEL_SERVICE_NAME"`
}

// Option mutates a Config during NewConfig
type Option func(*Config)

// NewConfig builds a Config by layering defaults, environment variables,
// and the given options, then validating the result.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := DefaultConfig()
	cfg.loadFromEnvironment()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the baseline configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:             "http://localhost:8080/api",
		HTTPTimeout:         15 * time.Second,
		PollInterval:        15 * time.Second,
		DeliverySimDuration: 30 * time.Second,
		ToastDuration:       4 * time.Second,
		Session: SessionConfig{
			TTL: 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "foodnow-client",
		},
	}
}

// Validate checks internal consistency
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required: %w", ErrRequestFailed)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", c.PollInterval)
	}
	if c.DeliverySimDuration <= 0 {
		return fmt.Errorf("delivery simulation duration must be positive, got %v", c.DeliverySimDuration)
	}
	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		return fmt.Errorf("telemetry endpoint is required when telemetry is enabled")
	}
	return nil
}

func (c *Config) loadFromEnvironment() {
	setString(&c.BaseURL, "FOODNOW_BASE_URL")
	setDuration(&c.HTTPTimeout, "FOODNOW_HTTP_TIMEOUT")
	setDuration(&c.PollInterval, "FOODNOW_POLL_INTERVAL")
	setDuration(&c.DeliverySimDuration, "FOODNOW_DELIVERY_SIM_DURATION")
	setDuration(&c.ToastDuration, "FOODNOW_TOAST_DURATION")
	setString(&c.Session.RedisURL, "FOODNOW_SESSION_REDIS_URL", "REDIS_URL")
	setDuration(&c.Session.TTL, "FOODNOW_SESSION_TTL")
	setString(&c.Logging.Level, "FOODNOW_LOG_LEVEL")
	setString(&c.Logging.Format, "FOODNOW_LOG_FORMAT")
	setBool(&c.Telemetry.Enabled, "FOODNOW_TELEMETRY_ENABLED")
	setString(&c.Telemetry.Endpoint, "FOODNOW_TELEMETRY_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	setString(&c.Telemetry.ServiceName, "FOODNOW_TELEMETRY_SERVICE_NAME", "OTEL_SERVICE_NAME")
}

func setString(dst *string, keys ...string) {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			*dst = v
			return
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// --- Functional options ---

// WithBaseURL sets the backend API root
func WithBaseURL(url string) Option {
	return func(c *Config) { c.BaseURL = url }
}

// WithHTTPTimeout sets the per-request timeout
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Config) { c.HTTPTimeout = d }
}

// WithPollInterval sets the dashboard polling cadence
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) { c.PollInterval = d }
}

// WithDeliverySimDuration sets the simulated courier travel time
func WithDeliverySimDuration(d time.Duration) Option {
	return func(c *Config) { c.DeliverySimDuration = d }
}

// WithToastDuration sets how long non-loading toasts stay visible
func WithToastDuration(d time.Duration) Option {
	return func(c *Config) { c.ToastDuration = d }
}

// WithSessionRedis stores the access token in Redis instead of memory
func WithSessionRedis(url string) Option {
	return func(c *Config) { c.Session.RedisURL = url }
}

// WithLogLevel sets the built-in logger's minimum level
func WithLogLevel(level string) Option {
	return func(c *Config) { c.Logging.Level = level }
}

// WithTelemetry enables OTel tracing of API calls
func WithTelemetry(endpoint, serviceName string) Option {
	return func(c *Config) {
		c.Telemetry.Enabled = true
		c.Telemetry.Endpoint = endpoint
		if serviceName != "" {
			c.Telemetry.ServiceName = serviceName
		}
	}
}

// fileConfig mirrors Config for YAML decoding. Durations are strings in
// Go duration syntax ("15s", "1m30s") since yaml.v3 has no native
// time.Duration support.
type fileConfig struct {
	BaseURL             string `yaml:"base_url"`
	HTTPTimeout         string `yaml:"http_timeout"`
	PollInterval        string `yaml:"poll_interval"`
	DeliverySimDuration string `yaml:"delivery_sim_duration"`
	ToastDuration       string `yaml:"toast_duration"`
	Session             struct {
		RedisURL string `yaml:"redis_url"`
		TTL      string `yaml:"ttl"`
	} `yaml:"session"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Telemetry struct {
		Enabled     *bool  `yaml:"enabled"`
		Endpoint    string `yaml:"endpoint"`
		ServiceName string `yaml:"service_name"`
	} `yaml:"telemetry"`
}

// WithConfigFile layers values from a YAML file. File values sit between
// environment variables and later functional options. Missing files and
// unparseable values are skipped.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		data, err := os.ReadFile(path)
		if err != nil {
			return
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return
		}
		applyString(&c.BaseURL, fc.BaseURL)
		applyDuration(&c.HTTPTimeout, fc.HTTPTimeout)
		applyDuration(&c.PollInterval, fc.PollInterval)
		applyDuration(&c.DeliverySimDuration, fc.DeliverySimDuration)
		applyDuration(&c.ToastDuration, fc.ToastDuration)
		applyString(&c.Session.RedisURL, fc.Session.RedisURL)
		applyDuration(&c.Session.TTL, fc.Session.TTL)
		applyString(&c.Logging.Level, fc.Logging.Level)
		applyString(&c.Logging.Format, fc.Logging.Format)
		if fc.Telemetry.Enabled != nil {
			c.Telemetry.Enabled = *fc.Telemetry.Enabled
		}
		applyString(&c.Telemetry.Endpoint, fc.Telemetry.Endpoint)
		applyString(&c.Telemetry.ServiceName, fc.Telemetry.ServiceName)
	}
}

func applyString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func applyDuration(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
	}
}

// LoadEnvFile loads a dotenv file into the process environment before
// NewConfig reads it. Missing files are not an error.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		return godotenv.Load()
	}
	return godotenv.Load(paths...)
}
