// Package config loads runtime settings from environment variables and an
// optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ironsheep/seamcarve-mcp/internal/imaging"
)

// EnvPrefix prefixes every environment variable, e.g. SEAMCARVE_MCP_LOG_LEVEL.
const EnvPrefix = "SEAMCARVE_MCP"

// Config holds the settings shared by the server and the carve command.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// StrictEnergy keeps every cached energy exact after a removal instead of
	// refreshing only the pixels beside the seam.
	StrictEnergy bool `mapstructure:"strict_energy"`

	// OutputDir receives carved images when a request names no output path.
	OutputDir string `mapstructure:"output_dir"`

	// SeamColor is the default "#RRGGBB" colour for seam overlays.
	SeamColor string `mapstructure:"seam_color"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		StrictEnergy: false,
		OutputDir:    os.TempDir(),
		SeamColor:    imaging.DefaultSeamColor,
	}
}

// New returns a viper instance with defaults, environment binding and the
// config file search path set up. Callers may bind flags before Load.
func New() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("strict_energy", d.StrictEnergy)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("seam_color", d.SeamColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("seamcarve-mcp")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "seamcarve-mcp"))
	}
	return v
}

// Load reads the config file if one exists and decodes v into a Config.
// A missing file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
