package screens

import (
	"io"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

// Env is what a screen needs from its caller
type Env struct {
	Term    terminal.Terminal
	Options []app.Option
	// Out receives anything a screen prints after the terminal is restored
	Out io.Writer
	// Seed makes random content reproducible
	Seed uint64
}

// Palette, tailwind shades
var (
	slate100   = terminal.RGB{R: 241, G: 245, B: 249}
	slate200   = terminal.RGB{R: 226, G: 232, B: 240}
	slate800   = terminal.RGB{R: 30, G: 41, B: 59}
	slate900   = terminal.RGB{R: 15, G: 23, B: 42}
	slate950   = terminal.RGB{R: 2, G: 6, B: 23}
	red700     = terminal.RGB{R: 185, G: 28, B: 28}
	red800     = terminal.RGB{R: 153, G: 27, B: 27}
	green500   = terminal.RGB{R: 34, G: 197, B: 94}
	green800   = terminal.RGB{R: 22, G: 101, B: 52}
	blue700    = terminal.RGB{R: 29, G: 78, B: 216}
	blue800    = terminal.RGB{R: 30, G: 64, B: 175}
	orange800  = terminal.RGB{R: 154, G: 52, B: 18}
	emerald700 = terminal.RGB{R: 4, G: 120, B: 87}
	indigo700  = terminal.RGB{R: 67, G: 56, B: 202}
	lightGreen = terminal.RGB{R: 144, G: 238, B: 144}
	lightYel   = terminal.RGB{R: 255, G: 255, B: 160}
)

var (
	plain    = tui.Style{}
	bold     = tui.Style{Attr: terminal.AttrBold}
	keyStyle = tui.DefaultStyle(terminal.RGBBlue).Bold()
)

// isQuit matches q and Esc
func isQuit(ev terminal.Event) bool {
	return ev.IsRune('q') || ev.IsKey(terminal.KeyEscape)
}

func isToggle(ev terminal.Event) bool {
	return ev.IsKey(terminal.KeySpace) || ev.IsKey(terminal.KeyEnter)
}

// hint builds a footer line alternating plain text and highlighted keys,
// starting with plain text
func hint(parts ...string) tui.Line {
	spans := make([]tui.Span, 0, len(parts))
	for i, p := range parts {
		if i%2 == 1 {
			spans = append(spans, tui.Styled(p, keyStyle))
			continue
		}
		spans = append(spans, tui.Raw(p))
	}
	return tui.NewLine(spans...).Centered()
}

// centered draws a one-line paragraph centered in area
func centered(area layout.Rect, buf *tui.Buffer, s string, style tui.Style) {
	tui.Paragraph{Text: tui.Text(s), Alignment: tui.AlignCenter, Style: style}.Render(area, buf)
}

// popup clears area and returns it, so a modal hides what is beneath
func popup(area layout.Rect, buf *tui.Buffer) layout.Rect {
	tui.Clear{}.Render(area, buf)
	return area
}
