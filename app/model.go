package app

import (
	"time"

	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

// Command tells the loop what to do after an Update
type Command uint8

const (
	// Continue keeps the loop running
	Continue Command = iota
	// Terminate exits the loop after the current iteration
	Terminate
	// Bell rings the configured bell and keeps running
	Bell
)

func (c Command) String() string {
	switch c {
	case Terminate:
		return "Terminate"
	case Bell:
		return "Bell"
	default:
		return "Continue"
	}
}

// Model is a screen state. Update must be pure: it returns the next state
// and never performs I/O. Render draws the state into buf within area.
type Model[S any] interface {
	Update(ev terminal.Event) (S, Command)
	Render(area layout.Rect, buf *tui.Buffer)
}

// Ticker is implemented by screens that advance on a timer
type Ticker[S any] interface {
	Tick(now time.Time) S
}

// Sized is implemented by screens whose input handling depends on where
// they were drawn, such as mouse hit testing. Resize is called before a
// render whenever the frame area changes, including the first frame.
type Sized[S any] interface {
	Resize(area layout.Rect) S
}
