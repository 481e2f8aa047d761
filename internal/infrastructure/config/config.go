package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Decision rules
	StrictDisputes bool `env:"ENGINE_STRICT_DISPUTES" envDefault:"true"`
	RejectLocked   bool `env:"ENGINE_REJECT_LOCKED"   envDefault:"false"`

	// Outputs (optional - leave empty to disable)
	Verify     bool   `env:"ENGINE_VERIFY"      envDefault:"false"`
	FactsOut   string `env:"ENGINE_FACTS_OUT"   envDefault:""`
	MetricsOut string `env:"ENGINE_METRICS_OUT" envDefault:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
