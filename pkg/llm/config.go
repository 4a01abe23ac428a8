package llm

import (
	"github.com/spf13/viper"
)

// Config holds LLM-related configuration shared by all providers.
type Config struct {
	MaxTokens int                       `mapstructure:"max_tokens"`
	Providers map[string]ProviderConfig `mapstructure:"providers"`
	Retry     RetryConfig               `mapstructure:"retry"`
}

// ProviderConfig allows per-provider model overrides keyed by mode name.
type ProviderConfig struct {
	Models map[string]string `mapstructure:"models"`
}

// RetryConfig controls transport-level retries inside provider adapters.
// Attempts of zero disables retrying.
type RetryConfig struct {
	Attempts     int    `mapstructure:"attempts"`
	InitialDelay int    `mapstructure:"initial_delay"` // milliseconds
	MaxDelay     int    `mapstructure:"max_delay"`     // milliseconds
	BackoffType  string `mapstructure:"backoff_type"`  // "fixed" or "exponential"
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 4096,
		Retry: RetryConfig{
			Attempts:     3,
			InitialDelay: 1000,
			MaxDelay:     10000,
			BackoffType:  "exponential",
		},
	}
}

// GetConfigFromViper builds a Config from viper state, applying defaults for
// anything unset.
func GetConfigFromViper() Config {
	cfg := DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	return cfg
}

// modelOverride returns the configured model override for a provider/mode
// pair, or "" when the built-in default applies.
func (c Config) modelOverride(provider string, mode Mode) string {
	pc, ok := c.Providers[provider]
	if !ok {
		return ""
	}
	return pc.Models[mode.String()]
}
