// Package config loads the korsel application configuration.
//
// Sources, lowest precedence first:
//
//  1. the embedded config.yml defaults;
//  2. an explicit file, or korsel.yml found in ".", "./config" or "$HOME/.korsel";
//  3. KORSEL_* environment variables, section and key joined by "_".
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

// EnvPrefix prefixes every environment override.
const EnvPrefix = "KORSEL"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full application configuration.
type Config struct {
	Network struct {
		File    string        `mapstructure:"file"`
		DSN     string        `mapstructure:"dsn"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"network"`
	Routing struct {
		Queue     string  `mapstructure:"queue"`
		Workers   int     `mapstructure:"workers"`
		CacheSize int     `mapstructure:"cacheSize"`
		Speed     float64 `mapstructure:"speed"`
		MaxCities int     `mapstructure:"maxCities"`
	} `mapstructure:"routing"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Map struct {
		Width  float64 `mapstructure:"width"`
		Height float64 `mapstructure:"height"`
		Dir    string  `mapstructure:"dir"`
	} `mapstructure:"map"`

	// Source is the file the defaults were overridden from, if any.
	Source string `mapstructure:"-"`
}

// Load builds a Config. A non-empty path must exist; an empty path searches
// the default locations and silently keeps the embedded defaults when no
// file is found.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
		return Config{}, fmt.Errorf("config: embedded defaults: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("korsel")
		v.AddConfigPath(".")
		v.AddConfigPath("config")
		v.AddConfigPath("$HOME/.korsel")
	}
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", describe(path), err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func describe(path string) string {
	if path == "" {
		return "korsel.yml"
	}

	return path
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Routing.Queue != "linear" && c.Routing.Queue != "heap":
		return fmt.Errorf("%w: routing.queue %q (want linear or heap)", ErrInvalid, c.Routing.Queue)
	case c.Routing.Workers < 1:
		return fmt.Errorf("%w: routing.workers %d", ErrInvalid, c.Routing.Workers)
	case c.Routing.CacheSize < 1:
		return fmt.Errorf("%w: routing.cacheSize %d", ErrInvalid, c.Routing.CacheSize)
	case !(c.Routing.Speed > 0):
		return fmt.Errorf("%w: routing.speed %v", ErrInvalid, c.Routing.Speed)
	case c.Routing.MaxCities < 0:
		return fmt.Errorf("%w: routing.maxCities %d", ErrInvalid, c.Routing.MaxCities)
	case c.Log.Format != "text" && c.Log.Format != "json":
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	case c.Network.Timeout <= 0:
		return fmt.Errorf("%w: network.timeout %v", ErrInvalid, c.Network.Timeout)
	case c.Map.Width <= 0 || c.Map.Height <= 0:
		return fmt.Errorf("%w: map size %vx%v", ErrInvalid, c.Map.Width, c.Map.Height)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return nil
}
