package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/tui-examples/terminal"
)

// DefaultTickRate is the tick interval for Ticker screens
const DefaultTickRate = 50 * time.Millisecond

// Ringer plays the audible cue for the Bell command
type Ringer interface {
	Ring()
}

// RingerFunc adapts a function to Ringer
type RingerFunc func()

func (f RingerFunc) Ring() { f() }

type options struct {
	tickRate time.Duration
	logger   *log.Logger
	bell     Ringer
	mouse    bool
	now      func() time.Time
}

// Option configures Run and NewLoop
type Option func(*options)

func defaultOptions() options {
	return options{
		tickRate: DefaultTickRate,
		logger:   log.New(io.Discard),
		mouse:    true,
		now:      time.Now,
	}
}

// WithTickRate sets the Tick interval; non-positive values keep the default
func WithTickRate(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.tickRate = d
		}
	}
}

// WithLogger routes loop diagnostics to l
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBell sets the cue for the Bell command. Without it the terminal bell rings.
func WithBell(r Ringer) Option {
	return func(o *options) {
		o.bell = r
	}
}

// WithMouse enables or disables mouse reporting (enabled by default)
func WithMouse(enabled bool) Option {
	return func(o *options) {
		o.mouse = enabled
	}
}

// WithClock replaces the time source passed to Tick
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func (o options) mouseMode() terminal.MouseMode {
	if !o.mouse {
		return terminal.MouseModeNone
	}
	return terminal.MouseModeClick | terminal.MouseModeMotion
}
