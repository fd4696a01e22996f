package screens

import (
	"strconv"
	"time"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

const (
	spinFrameRate = 100 * time.Millisecond
	spinLifetime  = 3 * time.Second
	maxSpinners   = 5
)

// Spinner is a single spinner in the bottom-right corner; the title shows
// the current frame index
type Spinner struct {
	frame    int
	lastSpin time.Time
}

func (s Spinner) Update(ev terminal.Event) (Spinner, app.Command) {
	if ev.IsRune('q') {
		return s, app.Terminate
	}
	return s, app.Continue
}

func (s Spinner) Tick(now time.Time) Spinner {
	s.frame, s.lastSpin = advanceSpin(s.frame, s.lastSpin, now)
	return s
}

func (s Spinner) Render(area layout.Rect, buf *tui.Buffer) {
	title, body := layout.Rows(layout.Fixed(1), layout.Min(0)).Split2(area)
	tui.Paragraph{Text: tui.Text(strconv.Itoa(s.frame))}.Render(title, buf)

	glyph := string(tui.Spinner{Frame: s.frame}.Glyph())
	tui.Paragraph{Text: tui.Text(glyph), Alignment: tui.AlignRight}.Render(body, buf)
}

// advanceSpin moves to the next frame once the frame rate has elapsed.
// A zero last time is stamped without advancing.
func advanceSpin(frame int, last, now time.Time) (int, time.Time) {
	if last.IsZero() {
		return frame, now
	}
	if now.Sub(last) < spinFrameRate {
		return frame, last
	}
	return (frame + 1) % len(tui.SpinnerASCII), now
}

type spin struct {
	frame   int
	last    time.Time
	started time.Time
}

func (s spin) expired(now time.Time) bool {
	return !s.started.IsZero() && now.Sub(s.started) >= spinLifetime
}

// Spinners runs short-lived spinners; a adds one up to five and the title
// counts the ones that finished
type Spinners struct {
	spins     []spin
	completed int
}

func NewSpinners() Spinners {
	return Spinners{spins: make([]spin, 2)}
}

func (s Spinners) Completed() int { return s.completed }

func (s Spinners) Active() int { return len(s.spins) }

func (s Spinners) Update(ev terminal.Event) (Spinners, app.Command) {
	switch {
	case ev.IsRune('q'):
		return s, app.Terminate
	case ev.IsRune('a'):
		if len(s.spins) < maxSpinners {
			s.spins = append(s.spins[:len(s.spins):len(s.spins)], spin{})
		}
	}
	return s, app.Continue
}

func (s Spinners) Tick(now time.Time) Spinners {
	kept := make([]spin, 0, len(s.spins))
	for _, sp := range s.spins {
		if sp.started.IsZero() {
			sp.started = now
		}
		sp.frame, sp.last = advanceSpin(sp.frame, sp.last, now)
		if sp.expired(now) {
			s.completed++
			continue
		}
		kept = append(kept, sp)
	}
	s.spins = kept
	return s
}

func (s Spinners) Render(area layout.Rect, buf *tui.Buffer) {
	title, body := layout.Rows(layout.Fixed(1), layout.Min(1)).Split2(area)
	centered(title, buf, strconv.Itoa(s.completed), plain)

	heights := make([]int, len(s.spins))
	for i := range heights {
		heights[i] = 1
	}
	rows := layout.Rows(layout.Fixeds(heights...)...).Split(body)
	for i, sp := range s.spins {
		glyph := string(tui.Spinner{Frame: sp.frame}.Glyph())
		centered(rows[i], buf, glyph, plain)
	}
}

func runSpinner(env Env) error {
	_, err := app.Run(env.Term, Spinner{}, env.Options...)
	return err
}

func runSpinners(env Env) error {
	_, err := app.Run(env.Term, NewSpinners(), env.Options...)
	return err
}
