package store

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/tailored-agentic-units/canvas/canvas"
)

// EnvPrefix prefixes environment overrides, e.g. CANVAS_OBSERVER.
const EnvPrefix = "CANVAS"

// Config holds store initialization parameters. Empty strings mean "unset"
// and fall back to DefaultConfig, so a config file or environment variable
// cannot start the store at an empty widget id; use WithInitialState for that.
type Config struct {
	Observer            string `json:"observer,omitempty" mapstructure:"observer"`                             // Registered observer name.
	InitialPageWidgetID string `json:"initial_page_widget_id,omitempty" mapstructure:"initial_page_widget_id"` // Widget selected before any update.
}

// DefaultConfig returns a Config that logs through slog.Default and starts
// from canvas.Initial.
func DefaultConfig() Config {
	return Config{
		Observer:            "slog",
		InitialPageWidgetID: canvas.DefaultPageWidgetID,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if source.InitialPageWidgetID != "" {
		c.InitialPageWidgetID = source.InitialPageWidgetID
	}
}

// LoadConfig reads a JSON, TOML or YAML file (chosen by extension), applies
// CANVAS_* environment overrides and merges the result over DefaultConfig.
// An empty filename skips the file and reads the environment only.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("observer", cfg.Observer)
	v.SetDefault("initial_page_widget_id", cfg.InitialPageWidgetID)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
