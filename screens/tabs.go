package screens

import (
	"fmt"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

// Tab is one of the four pages of the tabs screen
type Tab uint8

const (
	Tab1 Tab = iota
	Tab2
	Tab3
	Tab4
	tabCount
)

func (t Tab) String() string { return fmt.Sprintf("Tab %d", t+1) }

// previous and next saturate at the ends
func (t Tab) previous() Tab {
	if t == Tab1 {
		return t
	}
	return t - 1
}

func (t Tab) next() Tab {
	if t+1 >= tabCount {
		return t
	}
	return t + 1
}

func (t Tab) color() terminal.RGB {
	switch t {
	case Tab2:
		return emerald700
	case Tab3:
		return indigo700
	case Tab4:
		return red700
	default:
		return blue700
	}
}

func (t Tab) text() string {
	switch t {
	case Tab2:
		return "Here is the second tab!"
	case Tab3:
		return "Here is the third tab!"
	case Tab4:
		return "Here is the fourth tab!"
	default:
		return "Here is the first tab!"
	}
}

// Tabs switches between four colored pages
type Tabs struct {
	Selected Tab
}

func (t Tabs) Update(ev terminal.Event) (Tabs, app.Command) {
	switch {
	case ev.IsRune('q'):
		return t, app.Terminate
	case ev.IsAnyRune('1', '2', '3', '4'):
		t.Selected = Tab(ev.Rune - '1')
	case ev.IsRune('h') || ev.IsKey(terminal.KeyLeft):
		t.Selected = t.Selected.previous()
	case ev.IsRune('l') || ev.IsKey(terminal.KeyRight):
		t.Selected = t.Selected.next()
	}
	return t, app.Continue
}

func (t Tabs) Render(area layout.Rect, buf *tui.Buffer) {
	header, inner, footer := layout.Rows(layout.Fixed(1), layout.Min(0), layout.Fixed(1)).Split3(area)
	tabsArea, titleArea := layout.Columns(layout.Min(0), layout.Fixed(20)).Split2(header)

	buf.SetStringN(titleArea.X, titleArea.Y, "Tabs Example", titleArea.Width, bold)

	titles := make([]tui.Line, tabCount)
	for i := range titles {
		titles[i] = tui.NewLine(tui.Styled("  "+Tab(i).String()+"  ", tui.DefaultStyle(slate200)))
	}
	tui.Tabs{
		Titles:         titles,
		Selected:       int(t.Selected),
		HighlightStyle: tui.Style{Bg: t.Selected.color()},
		Divider:        " ",
	}.Render(tabsArea, buf)

	block := tui.NewBlock().
		WithLine(tui.LineHeavy).
		WithBorderStyle(tui.DefaultStyle(t.Selected.color()))
	block.Padding = layout.Margin{Horizontal: 1}
	tui.Paragraph{Text: tui.Text(t.Selected.text()), Block: &block}.Render(inner, buf)

	tui.Paragraph{Text: tui.Text("◄ ► to change tab | Press q to quit"), Alignment: tui.AlignCenter}.Render(footer, buf)
}

func runTabs(env Env) error {
	_, err := app.Run(env.Term, Tabs{}, env.Options...)
	return err
}
