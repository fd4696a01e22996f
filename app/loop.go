package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

var (
	// ErrInputSource is returned when the event source reports an error or closes
	ErrInputSource = errors.New("input source failed")
	// ErrRenderSurface is returned when a frame cannot be written to the terminal
	ErrRenderSurface = errors.New("render surface failed")
)

// Loop drives one screen over an already initialized terminal
type Loop[S Model[S]] struct {
	term     terminal.Terminal
	state    S
	buf      *tui.Buffer
	area     layout.Rect
	opts     options
	lastTick time.Time
	done     bool
	sized    bool
}

// NewLoop prepares a loop; the caller owns the terminal lifecycle
func NewLoop[S Model[S]](term terminal.Terminal, initial S, opts ...Option) (*Loop[S], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := term.SetMouseMode(o.mouseMode()); err != nil {
		return nil, fmt.Errorf("%w: mouse mode: %w", ErrInputSource, err)
	}
	w, h := term.Size()
	return &Loop[S]{
		term:     term,
		state:    initial,
		buf:      tui.NewBuffer(w, h),
		opts:     o,
		lastTick: o.now(),
	}, nil
}

// State returns the current screen state
func (l *Loop[S]) State() S {
	return l.state
}

// Done reports whether the screen asked to terminate
func (l *Loop[S]) Done() bool {
	return l.done
}

// Buffer returns the surface holding the last rendered frame
func (l *Loop[S]) Buffer() *tui.Buffer {
	return l.buf
}

// Draw renders the current state and flushes it to the terminal
func (l *Loop[S]) Draw() error {
	w, h := l.term.Size()
	l.buf.Resize(w, h)
	l.buf.Reset()
	if area := l.buf.Area(); area != l.area || !l.sized {
		l.area, l.sized = area, true
		if s, ok := any(l.state).(Sized[S]); ok {
			l.state = s.Resize(area)
		}
	}
	l.state.Render(l.area, l.buf)
	if err := l.term.Flush(l.buf.Cells(), w, h); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderSurface, err)
	}
	return nil
}

// Step runs one iteration: draw, wait for an event or tick, dispatch.
// It reports true once the state returned Terminate.
func (l *Loop[S]) Step() (bool, error) {
	if l.done {
		return true, nil
	}
	if err := l.Draw(); err != nil {
		return false, err
	}

	_, ticks := any(l.state).(Ticker[S])
	timeout := time.Duration(0)
	if ticks {
		timeout = max(l.opts.tickRate-l.opts.now().Sub(l.lastTick), time.Millisecond)
	}

	ev, ok := l.term.PollEvent(timeout)
	if ok {
		if err := l.dispatch(ev); err != nil {
			return false, err
		}
		if l.done {
			return true, nil
		}
	}

	// Ticks keep their rate while input streams in
	if ticks {
		if now := l.opts.now(); !ok || now.Sub(l.lastTick) >= l.opts.tickRate {
			if ticker, still := any(l.state).(Ticker[S]); still {
				l.state = ticker.Tick(now)
			}
			l.lastTick = now
		}
	}
	return false, nil
}

func (l *Loop[S]) dispatch(ev terminal.Event) error {
	switch ev.Type {
	case terminal.EventResize:
		l.opts.logger.Debug("resize", "width", ev.Width, "height", ev.Height)
		return nil
	case terminal.EventError:
		return fmt.Errorf("%w: %w", ErrInputSource, ev.Err)
	case terminal.EventClosed:
		return fmt.Errorf("%w: event source closed", ErrInputSource)
	case terminal.EventNone:
		return nil
	}

	next, cmd := l.state.Update(ev)
	l.state = next
	l.opts.logger.Debug("event", "type", ev.Type, "key", ev.Key, "rune", string(ev.Rune), "command", cmd)

	switch cmd {
	case Terminate:
		l.done = true
	case Bell:
		l.ring()
	}
	return nil
}

func (l *Loop[S]) ring() {
	if l.opts.bell != nil {
		l.opts.bell.Ring()
		return
	}
	if err := l.term.Bell(); err != nil {
		l.opts.logger.Warn("bell", "err", err)
	}
}

// Run enters the terminal, drives initial until it terminates and restores
// the terminal before returning. The final state is returned even on error.
func Run[S Model[S]](term terminal.Terminal, initial S, opts ...Option) (S, error) {
	guard, err := terminal.Enter(term)
	if err != nil {
		return initial, fmt.Errorf("%w: %w", ErrRenderSurface, err)
	}
	defer guard.Release()

	loop, err := NewLoop(term, initial, opts...)
	if err != nil {
		return initial, err
	}
	loop.opts.logger.Debug("loop start", "tick_rate", loop.opts.tickRate, "mouse", loop.opts.mouse)

	for {
		done, err := loop.Step()
		if err != nil {
			loop.opts.logger.Error("loop stopped", "err", err)
			return loop.State(), err
		}
		if done {
			loop.opts.logger.Debug("loop done")
			return loop.State(), nil
		}
	}
}
