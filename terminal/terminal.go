package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned when stdout is not attached to a terminal
	ErrNotTerminal = errors.New("not a terminal")
	// ErrNotInitialized is returned when the terminal is used outside Init/Fini
	ErrNotInitialized = errors.New("terminal not initialized")
	// ErrShortBuffer is returned when Flush receives fewer cells than width*height
	ErrShortBuffer = errors.New("cell buffer smaller than frame")
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Cell represents a single terminal cell. A zero Rune renders as a space.
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides cell-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes a row-major cell buffer, cells[y*width + x]
	Flush(cells []Cell, width, height int) error

	// Sync forces full redraw
	Sync()

	// PollEvent waits up to timeout for the next event; timeout <= 0 waits
	// indefinitely. Reports false on timeout.
	PollEvent(timeout time.Duration) (Event, bool)

	// PostEvent injects a synthetic event
	PostEvent(Event) error

	// SetMouseMode enables/disables mouse event reporting
	SetMouseMode(mode MouseMode) error

	// Bell rings the terminal bell
	Bell() error
}

// tcellTerminal implements Terminal on a tcell screen
type tcellTerminal struct {
	screen tcell.Screen
	events chan Event
	done   chan struct{}

	// mouse is only touched by the pump goroutine
	mouse mouseTracker

	mu          sync.Mutex
	initialized bool
	finalized   bool
	mouseMode   MouseMode
}

// New creates a Terminal on the process's controlling terminal
func New() (Terminal, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newTcellTerminal(s), nil
}

func newTcellTerminal(s tcell.Screen) *tcellTerminal {
	return &tcellTerminal{
		screen: s,
		events: make(chan Event, 64),
		done:   make(chan struct{}),
	}
}

func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if t.finalized {
		return ErrNotInitialized
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.applyMouseMode()
	t.initialized = true

	go t.pump()
	return nil
}

func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	close(t.done)
	t.screen.Fini()
}

func (t *tcellTerminal) active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initialized && !t.finalized
}

func (t *tcellTerminal) Size() (int, int) {
	if !t.active() {
		return 0, 0
	}
	return t.screen.Size()
}

func (t *tcellTerminal) Flush(cells []Cell, width, height int) error {
	if !t.active() {
		return ErrNotInitialized
	}
	if width < 0 || height < 0 || len(cells) < width*height {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrShortBuffer, len(cells), width, height)
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			c := row[x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, cellStyle(c))
			// Wide glyphs cover the next cell
			if runewidth.RuneWidth(r) == 2 {
				x++
			}
		}
	}
	t.screen.Show()
	return nil
}

func cellStyle(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(c.Fg.tcell()).
		Background(c.Bg.tcell()).
		Bold(c.Attrs&AttrBold != 0).
		Dim(c.Attrs&AttrDim != 0).
		Italic(c.Attrs&AttrItalic != 0).
		Underline(c.Attrs&AttrUnderline != 0).
		Blink(c.Attrs&AttrBlink != 0).
		Reverse(c.Attrs&AttrReverse != 0)
}

func (t *tcellTerminal) Sync() {
	if t.active() {
		t.screen.Sync()
	}
}

func (t *tcellTerminal) PollEvent(timeout time.Duration) (Event, bool) {
	if !t.active() {
		return Event{Type: EventError, Err: ErrNotInitialized}, true
	}

	if timeout <= 0 {
		select {
		case ev := <-t.events:
			return ev, true
		case <-t.done:
			return Event{Type: EventClosed}, true
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		return ev, true
	case <-t.done:
		return Event{Type: EventClosed}, true
	case <-timer.C:
		return Event{}, false
	}
}

func (t *tcellTerminal) PostEvent(ev Event) error {
	if !t.active() {
		return ErrNotInitialized
	}
	return t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

func (t *tcellTerminal) SetMouseMode(mode MouseMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mouseMode = mode
	if t.initialized && !t.finalized {
		t.applyMouseMode()
	}
	return nil
}

// applyMouseMode requires t.mu held
func (t *tcellTerminal) applyMouseMode() {
	if t.mouseMode == MouseModeNone {
		t.screen.DisableMouse()
		return
	}
	t.screen.EnableMouse(t.mouseMode.tcellFlags()...)
}

func (t *tcellTerminal) Bell() error {
	if !t.active() {
		return ErrNotInitialized
	}
	return t.screen.Beep()
}

// pump moves tcell events into the buffered channel until Fini
func (t *tcellTerminal) pump() {
	for {
		tev := t.screen.PollEvent()
		if tev == nil {
			t.send(Event{Type: EventClosed})
			return
		}
		ev, ok := t.translate(tev)
		if !ok {
			continue
		}
		if !t.send(ev) {
			return
		}
	}
}

func (t *tcellTerminal) send(ev Event) bool {
	select {
	case t.events <- ev:
		return true
	case <-t.done:
		return false
	}
}

func (t *tcellTerminal) translate(tev tcell.Event) (Event, bool) {
	switch ev := tev.(type) {
	case *tcell.EventKey:
		return translateKey(ev), true
	case *tcell.EventMouse:
		return t.mouse.translate(ev), true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	case *tcell.EventInterrupt:
		if posted, ok := ev.Data().(Event); ok {
			return posted, true
		}
	}
	return Event{}, false
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

var (
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiMouseOff      = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
)
