package screens

import (
	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

// Hello is a title, a centered body and a footer; any key quits
type Hello struct{}

func (h Hello) Update(ev terminal.Event) (Hello, app.Command) {
	if ev.Pressed() {
		return h, app.Terminate
	}
	return h, app.Continue
}

func (Hello) Render(area layout.Rect, buf *tui.Buffer) {
	title, body, footer := layout.Rows(layout.Fixed(1), layout.Min(0), layout.Fixed(1)).Split3(area)
	buf.SetString(title.X, title.Y, "Title", bold)
	tui.NewLine(tui.Raw("Content")).Centered().Render(body, buf)
	buf.SetString(footer.X, footer.Y, "Footer", plain)
}

func runHello(env Env) error {
	_, err := app.Run(env.Term, Hello{}, env.Options...)
	return err
}
