package audio

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a cue cannot be synthesized from the configuration
var ErrInvalidConfig = errors.New("audio: invalid config")

const (
	DefaultSampleRate = 44100
	DefaultFrequency  = 880.0
	DefaultDuration   = 60 * time.Millisecond
	DefaultVolume     = -1.5

	// Levels at or below this are muted
	silenceLevel = -10.0
)

// Config describes the bell cue
type Config struct {
	Enabled bool
	// Volume is a base-2 gain exponent: 0 plays at unity, -1 at half amplitude
	Volume     float64
	Frequency  float64
	Duration   time.Duration
	SampleRate int
}

// DefaultConfig returns a disabled cue with an A5 tone
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Volume:     DefaultVolume,
		Frequency:  DefaultFrequency,
		Duration:   DefaultDuration,
		SampleRate: DefaultSampleRate,
	}
}

// Validate checks that a tone can be generated from the configuration
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.Frequency <= 0 || c.Frequency >= float64(c.SampleRate)/2 {
		return fmt.Errorf("%w: frequency %.1f outside (0, %d)", ErrInvalidConfig, c.Frequency, c.SampleRate/2)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration %s", ErrInvalidConfig, c.Duration)
	}
	if c.Volume > 0 {
		return fmt.Errorf("%w: volume %.2f above unity", ErrInvalidConfig, c.Volume)
	}
	return nil
}
