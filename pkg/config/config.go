package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the lettertrie tool
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// InputConfig holds how words are read before they reach the trie
type InputConfig struct {
	Fold    bool     `mapstructure:"fold"`
	Preload []string `mapstructure:"preload"`
}

// OutputConfig holds result rendering configuration
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

var formats = []string{"text", "csv", "tsv", "json"}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath means defaults plus environment only.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("lettertrie")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("input.fold", false)
	v.SetDefault("input.preload", []string{})

	v.SetDefault("output.format", "text")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Log.ZerologLevel(); err != nil {
		return err
	}

	for _, format := range formats {
		if c.Output.Format == format {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %q (want one of %v)", c.Output.Format, formats)
}

// ZerologLevel parses the configured level name.
func (c *LogConfig) ZerologLevel() (zerolog.Level, error) {
	if strings.TrimSpace(c.Level) == "" {
		return zerolog.NoLevel, fmt.Errorf("log level is required")
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return level, nil
}
