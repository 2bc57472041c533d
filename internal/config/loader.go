package config

import (
	"github.com/rileyhilliard/sysgauge/internal/errors"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the diagnostics environment variables (SYSGAUGE_LOG_FILE).
const EnvPrefix = "SYSGAUGE"

// Load resolves the session config from built-in defaults plus the
// diagnostics environment. There is no config file.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindEnv("log_file"); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read environment",
			"Unset "+EnvPrefix+"_LOG_FILE and try again")
	}

	return parseConfig(v)
}

// parseConfig converts viper state into a validated Config.
func parseConfig(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid configuration",
			"Check the "+EnvPrefix+"_* environment variables")
	}

	cfg.LogFile = ExpandTilde(cfg.LogFile)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tick", DefaultTick)
	v.SetDefault("log_file", "")
}

// Validate checks that a Config can drive a dashboard session.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig, "Missing configuration", "")
	}
	if cfg.Tick <= 0 {
		return errors.New(errors.ErrConfig,
			"Tick interval must be positive",
			"This is a build default; report it as a bug")
	}
	return nil
}
