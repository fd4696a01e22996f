package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

func (t EventType) String() string {
	switch t {
	case EventKey:
		return "Key"
	case EventMouse:
		return "Mouse"
	case EventResize:
		return "Resize"
	case EventError:
		return "Error"
	case EventClosed:
		return "Closed"
	default:
		return "None"
	}
}

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Phase     KeyPhase
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError

	// Mouse event fields
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// KeyPress builds a pressed special-key event
func KeyPress(k Key) Event {
	ev := Event{Type: EventKey, Key: k}
	if k == KeySpace {
		ev.Rune = ' '
	}
	return ev
}

// RunePress builds a pressed printable-character event
func RunePress(r rune) Event {
	if r == ' ' {
		return KeyPress(KeySpace)
	}
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// MouseAt builds a mouse event at column x, row y
func MouseAt(action MouseAction, btn MouseButton, x, y int) Event {
	return Event{Type: EventMouse, MouseAction: action, MouseBtn: btn, MouseX: x, MouseY: y}
}

// Pressed reports whether this is a key event in the press phase
func (e Event) Pressed() bool {
	return e.Type == EventKey && e.Phase == PhasePress
}

// IsKey reports a pressed special key
func (e Event) IsKey(k Key) bool {
	return e.Pressed() && e.Key == k
}

// IsRune reports a pressed printable character
func (e Event) IsRune(r rune) bool {
	return e.Pressed() && (e.Key == KeyRune || e.Key == KeySpace) && e.Rune == r
}

// IsAnyRune reports whether a pressed rune is one of rs
func (e Event) IsAnyRune(rs ...rune) bool {
	for _, r := range rs {
		if e.IsRune(r) {
			return true
		}
	}
	return false
}

// Actionable reports whether the event is a pressed key or a mouse Moved/Down
func (e Event) Actionable() bool {
	switch e.Type {
	case EventKey:
		return e.Phase == PhasePress
	case EventMouse:
		return e.MouseAction == MouseActionMoved || e.MouseAction == MouseActionDown
	}
	return false
}

func modifiersFromTcell(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModAlt != 0 || m&tcell.ModMeta != 0 {
		out |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	return out
}

func modifiersToTcell(m Modifier) tcell.ModMask {
	var out tcell.ModMask
	if m&ModShift != 0 {
		out |= tcell.ModShift
	}
	if m&ModAlt != 0 {
		out |= tcell.ModAlt
	}
	if m&ModCtrl != 0 {
		out |= tcell.ModCtrl
	}
	return out
}

// translateKey converts a tcell key event; tcell reports presses only
func translateKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey, Modifiers: modifiersFromTcell(ev.Modifiers())}
	tk := ev.Key()

	switch {
	case tk == tcell.KeyRune && ev.Rune() == ' ':
		out.Key = KeySpace
		out.Rune = ' '
	case tk == tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tk == tcell.KeyBackspace2:
		out.Key = KeyBackspace
	case tk >= tcell.KeyCtrlA && tk <= tcell.KeyCtrlZ && !isTypeableControl(tk):
		out.Key = KeyCtrlA + Key(tk-tcell.KeyCtrlA)
		out.Modifiers |= ModCtrl
	default:
		if k, ok := fromTcellKey[tk]; ok {
			out.Key = k
		}
	}
	return out
}

// isTypeableControl reports control codes that tcell delivers as named keys
func isTypeableControl(k tcell.Key) bool {
	switch k {
	case tcell.KeyTab, tcell.KeyEnter, tcell.KeyBackspace, tcell.KeyEsc:
		return true
	}
	return false
}

// toTcellEvent builds the tcell equivalent of a key or mouse event for
// injection into a simulation screen
func toTcellEvent(ev Event) tcell.Event {
	switch ev.Type {
	case EventKey:
		mod := modifiersToTcell(ev.Modifiers)
		switch {
		case ev.Key == KeyRune:
			return tcell.NewEventKey(tcell.KeyRune, ev.Rune, mod)
		case ev.Key == KeySpace:
			return tcell.NewEventKey(tcell.KeyRune, ' ', mod)
		case ev.Key >= KeyCtrlA && ev.Key <= KeyCtrlZ:
			return tcell.NewEventKey(tcell.KeyCtrlA+tcell.Key(ev.Key-KeyCtrlA), 0, mod|tcell.ModCtrl)
		default:
			return tcell.NewEventKey(toTcellKey[ev.Key], 0, mod)
		}
	case EventMouse:
		var mask tcell.ButtonMask
		switch ev.MouseAction {
		case MouseActionScrollUp:
			mask = tcell.WheelUp
		case MouseActionScrollDown:
			mask = tcell.WheelDown
		case MouseActionDown, MouseActionDrag:
			mask = ev.MouseBtn.tcell()
		}
		return tcell.NewEventMouse(ev.MouseX, ev.MouseY, mask, modifiersToTcell(ev.Modifiers))
	case EventResize:
		return tcell.NewEventResize(ev.Width, ev.Height)
	}
	return nil
}
