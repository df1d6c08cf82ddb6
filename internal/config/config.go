// Package config loads application settings from the environment and an
// optional .env file.
package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Remote    Remote
	Heartbeat Heartbeat

	// LogFile receives zerolog output while the TUI owns the terminal.
	// Empty means the default path under the data dir.
	LogFile string
}

// Remote configures the results-service client. An empty BaseURL means no
// remote is configured and the app runs fully offline.
type Remote struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Heartbeat configures the periodic reconciliation push.
type Heartbeat struct {
	Interval time.Duration
}

// Configured reports whether a results service is set up.
func (r Remote) Configured() bool {
	return r.BaseURL != ""
}

// Load reads configuration from EXAMDECK_* environment variables, with an
// optional .env file in the working directory.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("examdeck")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Debug().Err(err).Msg("no .env config file")
	}

	viper.SetDefault("REMOTE_TIMEOUT", "15s")
	viper.SetDefault("HEARTBEAT_INTERVAL", "60s")

	cfg := &Config{
		Remote: Remote{
			BaseURL: viper.GetString("REMOTE_URL"),
			APIKey:  viper.GetString("REMOTE_API_KEY"),
			Timeout: viper.GetDuration("REMOTE_TIMEOUT"),
		},
		Heartbeat: Heartbeat{
			Interval: viper.GetDuration("HEARTBEAT_INTERVAL"),
		},
		LogFile: viper.GetString("LOG"),
	}

	if cfg.Heartbeat.Interval <= 0 {
		cfg.Heartbeat.Interval = 60 * time.Second
	}
	return cfg, nil
}
