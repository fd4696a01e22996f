package terminal

import "github.com/gdamore/tcell/v2"

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
)

// MouseAction represents the kind of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionDown
	MouseActionUp
	MouseActionMoved
	MouseActionDrag
	MouseActionScrollUp
	MouseActionScrollDown
)

// MouseMode controls which mouse events are reported (bitmask)
type MouseMode uint8

const (
	MouseModeNone   MouseMode = 0
	MouseModeClick  MouseMode = 1 << 0 // Press/release events
	MouseModeDrag   MouseMode = 1 << 1 // Drag events (button held + motion)
	MouseModeMotion MouseMode = 1 << 2 // All motion events
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionDown:
		return "Down"
	case MouseActionUp:
		return "Up"
	case MouseActionMoved:
		return "Moved"
	case MouseActionDrag:
		return "Drag"
	case MouseActionScrollUp:
		return "ScrollUp"
	case MouseActionScrollDown:
		return "ScrollDown"
	default:
		return "None"
	}
}

func (m MouseMode) tcellFlags() []tcell.MouseFlags {
	var flags []tcell.MouseFlags
	if m&MouseModeClick != 0 {
		flags = append(flags, tcell.MouseButtonEvents)
	}
	if m&MouseModeDrag != 0 {
		flags = append(flags, tcell.MouseDragEvents)
	}
	if m&MouseModeMotion != 0 {
		flags = append(flags, tcell.MouseMotionEvents)
	}
	return flags
}

const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3

func buttonFromMask(m tcell.ButtonMask) MouseButton {
	switch {
	case m&tcell.Button1 != 0:
		return MouseBtnLeft
	case m&tcell.Button3 != 0:
		return MouseBtnMiddle
	case m&tcell.Button2 != 0:
		return MouseBtnRight
	default:
		return MouseBtnNone
	}
}

func (b MouseButton) tcell() tcell.ButtonMask {
	switch b {
	case MouseBtnLeft:
		return tcell.Button1
	case MouseBtnMiddle:
		return tcell.Button3
	case MouseBtnRight:
		return tcell.Button2
	default:
		return tcell.ButtonNone
	}
}

// mouseTracker derives down/up/drag transitions from tcell's button state,
// which reports only which buttons are currently held
type mouseTracker struct {
	held tcell.ButtonMask
}

func (t *mouseTracker) translate(ev *tcell.EventMouse) Event {
	x, y := ev.Position()
	mask := ev.Buttons()
	out := Event{
		Type:      EventMouse,
		MouseX:    x,
		MouseY:    y,
		Modifiers: modifiersFromTcell(ev.Modifiers()),
	}

	switch {
	case mask&tcell.WheelUp != 0:
		out.MouseAction = MouseActionScrollUp
		return out
	case mask&tcell.WheelDown != 0:
		out.MouseAction = MouseActionScrollDown
		return out
	}

	held := mask & buttonMask
	switch {
	case held != 0 && held&^t.held != 0:
		out.MouseAction = MouseActionDown
		out.MouseBtn = buttonFromMask(held &^ t.held)
	case held != 0:
		out.MouseAction = MouseActionDrag
		out.MouseBtn = buttonFromMask(held)
	case t.held != 0:
		out.MouseAction = MouseActionUp
		out.MouseBtn = buttonFromMask(t.held)
	default:
		out.MouseAction = MouseActionMoved
	}

	t.held = held
	return out
}
