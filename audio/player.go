package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player rings the bell cue. Ring must not block the caller.
type Player interface {
	Ring()
	Close()
}

// Silent is the Player used when audio is disabled or unavailable
type Silent struct{}

func (Silent) Ring()  {}
func (Silent) Close() {}

// Speaker plays the cue through the system audio device
type Speaker struct {
	mu     sync.Mutex
	cfg    Config
	ready  bool
	played int
}

// NewSpeaker initializes the audio device for cfg's sample rate
func NewSpeaker(cfg Config) (*Speaker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	return &Speaker{cfg: cfg, ready: true}, nil
}

// Ring queues one tone; the device mixes overlapping rings
func (s *Speaker) Ring() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	tone, err := Tone(s.cfg)
	if err != nil {
		return
	}
	speaker.Play(tone)
	s.played++
}

// Played reports how many tones were queued
func (s *Speaker) Played() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.played
}

// Close silences pending tones and releases the device; safe to call twice
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.ready = false
}

// New returns a Player for cfg. A disabled config yields Silent; a device
// failure yields Silent together with the error so callers can log it.
func New(cfg Config) (Player, error) {
	if !cfg.Enabled {
		return Silent{}, nil
	}
	sp, err := NewSpeaker(cfg)
	if err != nil {
		return Silent{}, err
	}
	return sp, nil
}
