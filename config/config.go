// Package config loads runtime settings for the signup CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Theme    string        `mapstructure:"theme"`
	Debounce time.Duration `mapstructure:"debounce"`
	Output   string        `mapstructure:"output"`
	Log      LogConfig     `mapstructure:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from path (or the default location when path is
// empty) and the environment. Env var overrides use prefix SIGNUP_. A
// missing default config file is not an error; a missing explicit one is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("theme", "")
	v.SetDefault("debounce", "300ms")
	v.SetDefault("output", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(userConfigDir(), "signup"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SIGNUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Debounce < 0 {
		return Config{}, fmt.Errorf("config: debounce must not be negative, got %s", c.Debounce)
	}
	return c, nil
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}
