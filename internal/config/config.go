package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains
// settings for the environment, the backend API connection, the ops HTTP
// server and the watch loop.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// API contains the backend connection settings
	API struct {
		// BaseURL is the backend origin, e.g. "https://gems.example.com"
		BaseURL string `env:"API_BASE_URL" env-default:"http://localhost:8000" yaml:"baseUrl"`
		// Token is the API token attached to every request
		Token string `env:"API_TOKEN" env-default:"" yaml:"token"`
		// Timeout bounds each backend request end to end
		Timeout time.Duration `env:"API_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"api"`

	// Ops contains the watch-mode HTTP server settings (metrics, pprof, snapshots)
	Ops struct {
		// Addr is the address and port the ops server listens on
		Addr string `env:"OPS_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading an entire request
		ReadTimeout time.Duration `env:"OPS_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"OPS_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out response writes
		WriteTimeout time.Duration `env:"OPS_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the keep-alive idle bound
		IdleTimeout time.Duration `env:"OPS_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"OPS_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"ops"`

	// Watch contains the refresh-loop settings
	Watch struct {
		// Interval is how often watch mode refreshes the dashboard domain
		Interval time.Duration `env:"WATCH_INTERVAL" env-default:"1m" yaml:"interval"`
	} `yaml:"watch"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for a yaml config file and returns a filled Config.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
