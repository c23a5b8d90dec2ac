// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Feed modes.
const (
	FeedModeWebSocket = "ws"
	FeedModeFixture   = "fixture"
)

// Config holds all application configuration.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Feed       FeedConfig       `mapstructure:"feed"`
	Markets    []MarketConfig   `mapstructure:"markets"`
	Optimizer  OptimizerConfig  `mapstructure:"optimizer"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	TUIMode     bool   `mapstructure:"-"` // Set at runtime, not from config file
}

// FeedConfig holds snapshot feed configuration.
type FeedConfig struct {
	Mode           string        `mapstructure:"mode"` // "ws" or "fixture"
	WebSocketURL   string        `mapstructure:"websocket_url"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff"`
	MaxBackoff     time.Duration `mapstructure:"max_backoff"`
	ReplayInterval time.Duration `mapstructure:"replay_interval"` // fixture mode only
	StaleTimeout   time.Duration `mapstructure:"stale_timeout"`
}

// PoolConfig describes one constant-product pool.
type PoolConfig struct {
	AssetReserve  uint64 `mapstructure:"asset_reserve"`
	StableReserve uint64 `mapstructure:"stable_reserve"`
	FeeBps        uint16 `mapstructure:"fee_bps"`
}

// MarketConfig describes one market for fixture-mode replay.
type MarketConfig struct {
	ID           string       `mapstructure:"id"`
	Spot         PoolConfig   `mapstructure:"spot"`
	Conditionals []PoolConfig `mapstructure:"conditionals"`
}

// OptimizerConfig holds sizing search configuration.
type OptimizerConfig struct {
	ScansPerMinute int `mapstructure:"scans_per_minute"`
}

// SettlementConfig holds trade execution configuration.
type SettlementConfig struct {
	Execute         bool   `mapstructure:"execute"`
	MinProfit       uint64 `mapstructure:"min_profit"`
	ProfitRecipient string `mapstructure:"profit_recipient"`
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	OTLPHeaders    string `mapstructure:"otlp_headers"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("QARB")
	v.AutomaticEnv()

	// Bind env vars to config keys
	bindEnvVars(v)

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "QARB_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "QARB_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "QARB_LOG_LEVEL", "LOG_LEVEL")

	// Feed
	v.BindEnv("feed.mode", "QARB_FEED_MODE", "FEED_MODE")
	v.BindEnv("feed.websocket_url", "QARB_FEED_WS_URL", "FEED_WS_URL")

	// Optimizer
	v.BindEnv("optimizer.scans_per_minute", "QARB_SCANS_PER_MINUTE")

	// Settlement
	v.BindEnv("settlement.execute", "QARB_EXECUTE")
	v.BindEnv("settlement.min_profit", "QARB_MIN_PROFIT")
	v.BindEnv("settlement.profit_recipient", "QARB_PROFIT_RECIPIENT")

	// Telemetry
	v.BindEnv("telemetry.enabled", "QARB_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "QARB_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.otlp_endpoint", "QARB_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "quantum-arb")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	// Feed defaults
	v.SetDefault("feed.mode", FeedModeFixture)
	v.SetDefault("feed.max_reconnects", 0) // infinite
	v.SetDefault("feed.initial_backoff", "1s")
	v.SetDefault("feed.max_backoff", "30s")
	v.SetDefault("feed.replay_interval", "500ms")
	v.SetDefault("feed.stale_timeout", "5s")

	// Optimizer defaults
	v.SetDefault("optimizer.scans_per_minute", 600)

	// Settlement defaults
	v.SetDefault("settlement.execute", false)
	v.SetDefault("settlement.min_profit", 0)
	v.SetDefault("settlement.profit_recipient", "treasury")

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "quantum-arb")
	v.SetDefault("telemetry.prometheus_port", 9090)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Feed.Mode {
	case FeedModeWebSocket:
		if c.Feed.WebSocketURL == "" {
			return fmt.Errorf("feed.websocket_url is required in ws mode")
		}
	case FeedModeFixture:
		if len(c.Markets) == 0 {
			return fmt.Errorf("markets cannot be empty in fixture mode")
		}
	default:
		return fmt.Errorf("unknown feed.mode: %s", c.Feed.Mode)
	}
	if c.Optimizer.ScansPerMinute <= 0 {
		return fmt.Errorf("optimizer.scans_per_minute must be positive")
	}
	for i, m := range c.Markets {
		if m.ID == "" {
			return fmt.Errorf("markets[%d].id is required", i)
		}
		if n := len(m.Conditionals); n < 2 || n > 50 {
			return fmt.Errorf("markets[%d] needs between 2 and 50 conditionals, got %d", i, n)
		}
	}
	if c.Settlement.Execute && c.Settlement.ProfitRecipient == "" {
		return fmt.Errorf("settlement.profit_recipient is required when execute is enabled")
	}
	return nil
}
