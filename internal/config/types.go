package config

import "time"

// Fixed dashboard cadence and scaling. These are code defaults, not operator knobs.
const (
	// DefaultTick is the bounded input wait between samples.
	DefaultTick = time.Second

	// NetworkCeilingKB is the per-tick throughput that fills a network gauge.
	NetworkCeilingKB = 1000.0
)

// Config holds the resolved runtime settings for a dashboard session.
type Config struct {
	// Tick is how long each iteration waits for input before sampling again.
	Tick time.Duration `mapstructure:"tick"`

	// LogFile receives log output while the dashboard owns the terminal.
	// Empty discards it.
	LogFile string `mapstructure:"log_file"`
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Tick: DefaultTick,
	}
}
