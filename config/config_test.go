package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tui-examples/audio"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	def := Default()
	require.NoError(t, def.Validate())
	assert.Equal(t, 50*time.Millisecond, def.TickRate)
	assert.True(t, def.Mouse)
	assert.False(t, def.Audio.Enabled)
	assert.InDelta(t, -1.5, def.Audio.Volume, 1e-9)
	assert.InDelta(t, 880.0, def.Audio.Frequency, 1e-9)
	assert.Equal(t, 60*time.Millisecond, def.Audio.Duration)
}

func TestReadFile(t *testing.T) {
	p := writeConfig(t, `
tick_rate: 100ms
mouse: false
audio:
  enabled: true
  volume: -2
  frequency: 660
  duration: 80ms
log:
  debug: true
  level: warn
  file: /tmp/x.log
`)
	loader := NewLoader()
	cfg, err := loader.Read(p)
	require.NoError(t, err)
	assert.Equal(t, p, loader.Path())

	assert.Equal(t, 100*time.Millisecond, cfg.TickRate)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, AudioConfig{Enabled: true, Volume: -2, Frequency: 660, Duration: 80 * time.Millisecond}, cfg.Audio)
	assert.Equal(t, LogConfig{Debug: true, Level: "warn", File: "/tmp/x.log"}, cfg.Log)
	assert.Equal(t, log.WarnLevel, cfg.LogLevel())

	path, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.log", path)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "mouse: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, Default().TickRate, cfg.TickRate)
	assert.Equal(t, Default().Audio, cfg.Audio)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("TUIEX_TICK_RATE", "20ms")
	t.Setenv("TUIEX_AUDIO_FREQUENCY", "440")
	t.Setenv("TUIEX_AUDIO_ENABLED", "true")

	cfg, err := Load(writeConfig(t, "tick_rate: 100ms\n"))
	require.NoError(t, err)
	assert.Equal(t, 20*time.Millisecond, cfg.TickRate)
	assert.InDelta(t, 440.0, cfg.Audio.Frequency, 1e-9)
	assert.True(t, cfg.Audio.Enabled)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, errConfigRead)
}

func TestInvalidFileRejected(t *testing.T) {
	_, err := Load(writeConfig(t, "tick_rate: 0s\n"))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"tick too fast":     func(c *Config) { c.TickRate = time.Microsecond },
		"tick too slow":     func(c *Config) { c.TickRate = time.Minute },
		"bad frequency":     func(c *Config) { c.Audio.Frequency = -1 },
		"zero bell length":  func(c *Config) { c.Audio.Duration = 0 },
		"amplifying volume": func(c *Config) { c.Audio.Volume = 3 },
		"unknown level":     func(c *Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestAudioCue(t *testing.T) {
	cfg := Default()
	cfg.Audio = AudioConfig{Enabled: true, Volume: -3, Frequency: 440, Duration: time.Second}

	cue := cfg.AudioCue()
	assert.True(t, cue.Enabled)
	assert.InDelta(t, -3.0, cue.Volume, 1e-9)
	assert.InDelta(t, 440.0, cue.Frequency, 1e-9)
	assert.Equal(t, time.Second, cue.Duration)
	assert.Equal(t, audio.DefaultSampleRate, cue.SampleRate)
}

func TestLogLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "nonsense"
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
}
