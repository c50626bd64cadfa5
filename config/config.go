package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Rima specifics
	SQLite    SQLiteConfig
	Dates     DatesConfig
	RateLimit RateLimitConfig
	Insight   InsightConfig
	Seed      SeedConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path string
}

// DatesConfig sets the IANA timezone used to resolve natural-language
// date phrases ("next friday", "in 3 days").
type DatesConfig struct {
	Timezone string
}

// RateLimitConfig bounds mutating requests per client IP.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// InsightConfig tunes the simulated analysis pause before insights are
// returned. Zero disables the pause.
type InsightConfig struct {
	DelayMillis int
}

type SeedConfig struct {
	Enabled bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Rima specifics
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	if p := viper.GetString("sqlite_path"); p != "" {
		cfg.SQLite.Path = p
	}

	cfg.Dates.Timezone = viper.GetString("dates.timezone")

	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	cfg.Insight.DelayMillis = viper.GetInt("insight.delay_millis")

	cfg.Seed.Enabled = viper.GetBool("seed.enabled")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("sqlite.path", "rima.db")
	viper.SetDefault("dates.timezone", "UTC")
	viper.SetDefault("rate_limit.requests_per_second", 10)
	viper.SetDefault("rate_limit.burst", 20)
	viper.SetDefault("insight.delay_millis", 1500)
	viper.SetDefault("seed.enabled", true)
}
