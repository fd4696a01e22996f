package screens

import (
	"strings"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/fsm"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

// ButtonState is the visual state of a Button
type ButtonState uint8

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonActive
)

type buttonTrigger uint8

const (
	buttonFocus buttonTrigger = iota
	buttonBlur
	buttonToggle
)

var buttonStates = fsm.NewBuilder[ButtonState, buttonTrigger, struct{}](ButtonNormal, "Normal").
	State(ButtonSelected, "Selected").
	State(ButtonActive, "Active").
	On(ButtonNormal, buttonFocus, ButtonSelected, nil).
	On(ButtonActive, buttonFocus, ButtonSelected, nil).
	On(ButtonSelected, buttonBlur, ButtonNormal, nil).
	On(ButtonActive, buttonBlur, ButtonNormal, nil).
	On(ButtonNormal, buttonToggle, ButtonActive, nil).
	On(ButtonSelected, buttonToggle, ButtonActive, nil).
	On(ButtonActive, buttonToggle, ButtonSelected, nil).
	MustBuild()

func (s ButtonState) String() string { return buttonStates.Name(s) }

// ButtonTheme colors one button
type ButtonTheme struct {
	Text       terminal.RGB
	Background terminal.RGB
	Highlight  terminal.RGB
	Shadow     terminal.RGB
}

var (
	ThemeRed = ButtonTheme{
		Text:       terminal.RGB{R: 48, G: 16, B: 16},
		Background: terminal.RGB{R: 144, G: 48, B: 48},
		Highlight:  terminal.RGB{R: 192, G: 64, B: 64},
		Shadow:     terminal.RGB{R: 96, G: 32, B: 32},
	}
	ThemeGreen = ButtonTheme{
		Text:       terminal.RGB{R: 16, G: 48, B: 16},
		Background: terminal.RGB{R: 48, G: 144, B: 48},
		Highlight:  terminal.RGB{R: 64, G: 192, B: 64},
		Shadow:     terminal.RGB{R: 32, G: 96, B: 32},
	}
	ThemeBlue = ButtonTheme{
		Text:       terminal.RGB{R: 16, G: 24, B: 48},
		Background: terminal.RGB{R: 48, G: 72, B: 144},
		Highlight:  terminal.RGB{R: 64, G: 96, B: 192},
		Shadow:     terminal.RGB{R: 32, G: 48, B: 96},
	}
)

// Button is a three-row push button with a bevel
type Button struct {
	Label string
	Theme ButtonTheme
	State ButtonState
}

// colors returns background, text, shadow and highlight for the state;
// an active button swaps its bevel
func (b Button) colors() (bg, text, shadow, highlight terminal.RGB) {
	t := b.Theme
	switch b.State {
	case ButtonSelected:
		return t.Highlight, t.Text, t.Shadow, t.Highlight
	case ButtonActive:
		return t.Background, t.Text, t.Highlight, t.Shadow
	default:
		return t.Background, t.Text, t.Shadow, t.Highlight
	}
}

func (b Button) Render(area layout.Rect, buf *tui.Buffer) {
	area = area.Intersect(buf.Area())
	if area.IsEmpty() {
		return
	}
	bg, text, shadow, highlight := b.colors()
	buf.SetStyle(area, tui.Style{Fg: text, Bg: bg})

	if area.Height > 2 {
		buf.SetString(area.X, area.Y, strings.Repeat("▔", area.Width), tui.Style{Fg: highlight, Bg: bg})
	}
	if area.Height > 1 {
		buf.SetString(area.X, area.Bottom()-1, strings.Repeat("▁", area.Width), tui.Style{Fg: shadow, Bg: bg})
	}

	label := tui.Truncate(b.Label, area.Width)
	x := area.X + (area.Width-tui.StringWidth(label))/2
	y := area.Y + (area.Height-1)/2
	buf.SetString(x, y, label, tui.Style{Fg: text, Bg: bg})
}

const (
	buttonWidth = 15
	buttonCount = 3
	buttonRows  = 3
)

var (
	buttonLabels = [buttonCount]string{"Red", "Green", "Blue"}
	buttonThemes = [buttonCount]ButtonTheme{ThemeRed, ThemeGreen, ThemeBlue}
)

// Buttons is the custom widget screen: three buttons driven by keys and mouse
type Buttons struct {
	States   [buttonCount]ButtonState
	Selected int
	// Area is the last drawn area; mouse events are hit tested against it
	Area layout.Rect
}

func NewButtons() Buttons {
	return Buttons{States: [buttonCount]ButtonState{ButtonSelected, ButtonNormal, ButtonNormal}}
}

func (b Buttons) Resize(area layout.Rect) Buttons {
	b.Area = area
	return b
}

func (b Buttons) Update(ev terminal.Event) (Buttons, app.Command) {
	switch ev.Type {
	case terminal.EventKey:
		return b.key(ev)
	case terminal.EventMouse:
		return b.mouse(ev)
	}
	return b, app.Continue
}

func (b Buttons) key(ev terminal.Event) (Buttons, app.Command) {
	switch {
	case ev.IsRune('q'):
		return b, app.Terminate
	case ev.IsRune('h') || ev.IsKey(terminal.KeyLeft):
		b = b.selectButton(max(b.Selected-1, 0))
	case ev.IsRune('l') || ev.IsKey(terminal.KeyRight):
		b = b.selectButton(min(b.Selected+1, buttonCount-1))
	case isToggle(ev):
		return b.toggle()
	}
	return b, app.Continue
}

func (b Buttons) mouse(ev terminal.Event) (Buttons, app.Command) {
	i, ok := b.buttonAt(ev.MouseX, ev.MouseY)
	if !ok {
		return b, app.Continue
	}
	switch ev.MouseAction {
	case terminal.MouseActionMoved:
		if i != b.Selected {
			b = b.selectButton(i)
		}
	case terminal.MouseActionDown:
		if i != b.Selected {
			b = b.selectButton(i)
		}
		return b.toggle()
	}
	return b, app.Continue
}

// buttonAt maps a cell to the button drawn there. Buttons squeezed to
// nothing by a small area are never hit.
func (b Buttons) buttonAt(x, y int) (int, bool) {
	for i, r := range buttonRects(b.Area) {
		if !r.IsEmpty() && r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

func (b Buttons) selectButton(i int) Buttons {
	if i == b.Selected {
		return b
	}
	b.States[b.Selected], _ = buttonStates.Next(b.States[b.Selected], buttonBlur, struct{}{})
	b.Selected = i
	b.States[i], _ = buttonStates.Next(b.States[i], buttonFocus, struct{}{})
	return b
}

// toggle flips the selected button; activating it rings the bell
func (b Buttons) toggle() (Buttons, app.Command) {
	next, _ := buttonStates.Next(b.States[b.Selected], buttonToggle, struct{}{})
	b.States[b.Selected] = next
	if next == ButtonActive {
		return b, app.Bell
	}
	return b, app.Continue
}

// buttonsLayout splits the screen into title, button row and help
func buttonsLayout(area layout.Rect) []layout.Rect {
	return layout.Rows(layout.Fixed(1), layout.Max(buttonRows), layout.Fixed(1), layout.Min(0)).Split(area)
}

func buttonRects(area layout.Rect) [buttonCount]layout.Rect {
	cells := layout.Columns(layout.Fixed(buttonWidth), layout.Fixed(buttonWidth), layout.Fixed(buttonWidth), layout.Min(0)).
		Split(buttonsLayout(area)[1])
	return [buttonCount]layout.Rect(cells[:buttonCount])
}

func (b Buttons) Render(area layout.Rect, buf *tui.Buffer) {
	rows := buttonsLayout(area)
	tui.NewParagraph("Custom Widget Example (mouse enabled)").Render(rows[0], buf)

	for i, r := range buttonRects(area) {
		Button{Label: buttonLabels[i], Theme: buttonThemes[i], State: b.States[i]}.Render(r, buf)
	}

	tui.NewParagraph("←/→: select, Space: toggle, q: quit").Render(rows[2], buf)
}

func runButtons(env Env) error {
	_, err := app.Run(env.Term, NewButtons(), env.Options...)
	return err
}
