package screens

import (
	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

// Popup toggles a centered popup over a content block with p
type Popup struct {
	Shown bool
}

func (p Popup) Update(ev terminal.Event) (Popup, app.Command) {
	switch {
	case ev.IsRune('q'):
		return p, app.Terminate
	case ev.IsRune('p'):
		p.Shown = !p.Shown
	}
	return p, app.Continue
}

func (p Popup) Render(area layout.Rect, buf *tui.Buffer) {
	instructions, content := layout.Rows(layout.Percentage(20), layout.Percentage(80)).Split2(area)

	text := "Press p to show the popup"
	if p.Shown {
		text = "Press p to close the popup"
	}
	tui.Paragraph{
		Text:      tui.StyledText(text, tui.Style{Attr: terminal.AttrBlink}),
		Alignment: tui.AlignCenter,
		Wrap:      true,
	}.Render(instructions, buf)

	tui.NewBlock().Titled("Content").
		WithStyle(tui.Style{Bg: terminal.RGBBlue}).
		Render(content, buf)

	if p.Shown {
		box := popup(layout.CenteredIn(area, 60, 20), buf)
		tui.NewBlock().Titled("Popup").Render(box, buf)
	}
}

func runPopup(env Env) error {
	_, err := app.Run(env.Term, Popup{}, env.Options...)
	return err
}
