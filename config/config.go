// Package config loads runtime settings from defaults, an optional config
// file and TUIEX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/audio"
)

var (
	errConfigRead = errors.New("failed to read config file")
	// ErrInvalid is returned by Validate
	ErrInvalid = errors.New("invalid config")
)

const (
	AppName           = "tui-examples"
	DefaultConfigName = "config"
	DefaultLogName    = AppName + ".log"
	EnvPrefix         = "tuiex"

	minTickRate = time.Millisecond
	maxTickRate = 5 * time.Second
)

type Config struct {
	TickRate time.Duration `mapstructure:"tick_rate"`
	// Mouse enables pointer reporting for screens that handle it
	Mouse bool        `mapstructure:"mouse"`
	Audio AudioConfig `mapstructure:"audio"`
	Log   LogConfig   `mapstructure:"log"`
}

type AudioConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Volume    float64       `mapstructure:"volume"`
	Frequency float64       `mapstructure:"frequency"`
	Duration  time.Duration `mapstructure:"duration"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Level string `mapstructure:"level"`
	// File overrides the log path under $XDG_STATE_HOME
	File string `mapstructure:"file"`
}

// Default returns the built-in settings
func Default() Config {
	a := audio.DefaultConfig()
	return Config{
		TickRate: app.DefaultTickRate,
		Mouse:    true,
		Audio: AudioConfig{
			Enabled:   a.Enabled,
			Volume:    a.Volume,
			Frequency: a.Frequency,
			Duration:  a.Duration,
		},
		Log: LogConfig{Level: "debug"},
	}
}

// Validate reports the first setting that the loop or the bell cannot use
func (c Config) Validate() error {
	if c.TickRate < minTickRate || c.TickRate > maxTickRate {
		return fmt.Errorf("%w: tick_rate %s outside [%s, %s]", ErrInvalid, c.TickRate, minTickRate, maxTickRate)
	}
	if err := c.AudioCue().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}

// AudioCue converts the audio section into bell parameters
func (c Config) AudioCue() audio.Config {
	cue := audio.DefaultConfig()
	cue.Enabled = c.Audio.Enabled
	cue.Volume = c.Audio.Volume
	cue.Frequency = c.Audio.Frequency
	cue.Duration = c.Audio.Duration
	return cue
}

// LogLevel returns the parsed level, falling back to debug
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.DebugLevel
	}
	return lvl
}

// Dir is the directory searched for the config file
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// LogPath returns the log file location, creating its directory
func (c Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(AppName, DefaultLogName))
}
