package screens

import (
	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/fsm"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

// Focus is the block receiving input on the menu screen
type Focus uint8

const (
	FocusMenu Focus = iota
	FocusTab1
	FocusTab2
)

type focusTrigger uint8

const (
	focusOpen focusTrigger = iota
	focusBack
)

// menuPick is the menu selection a transition is guarded on
type menuPick struct {
	index int
	ok    bool
}

func picked(i int) fsm.GuardFunc[menuPick] {
	return func(p menuPick) bool { return p.ok && p.index == i }
}

var focusTable = fsm.NewBuilder[Focus, focusTrigger, menuPick](FocusMenu, "Menu").
	State(FocusTab1, "Tab1").
	State(FocusTab2, "Tab2").
	On(FocusMenu, focusOpen, FocusTab1, picked(0)).
	On(FocusMenu, focusOpen, FocusTab2, picked(1)).
	On(FocusTab1, focusBack, FocusMenu, nil).
	On(FocusTab2, focusBack, FocusMenu, nil).
	MustBuild()

func (f Focus) String() string { return focusTable.Name(f) }

var menuItems = []string{"tab1", "tab2"}

// Menu picks one of two pages from a list; q in a page returns here
type Menu struct {
	Focus Focus
	State tui.ListState
}

func (m Menu) Update(ev terminal.Event) (Menu, app.Command) {
	if !ev.Pressed() {
		return m, app.Continue
	}
	if m.Focus != FocusMenu {
		if ev.IsRune('q') {
			m.Focus, _ = focusTable.Next(m.Focus, focusBack, menuPick{})
		}
		return m, app.Continue
	}

	switch {
	case ev.IsRune('q'):
		return m, app.Terminate
	case ev.IsRune('k') || ev.IsKey(terminal.KeyUp):
		m.State.Previous(len(menuItems))
	case ev.IsRune('j') || ev.IsKey(terminal.KeyDown):
		m.State.Next(len(menuItems))
	case ev.IsKey(terminal.KeyEnter):
		i, ok := m.State.Selected()
		m.Focus, _ = focusTable.Next(m.Focus, focusOpen, menuPick{index: i, ok: ok})
	}
	return m, app.Continue
}

func (m Menu) Render(area layout.Rect, buf *tui.Buffer) {
	switch m.Focus {
	case FocusTab1:
		tui.NewParagraph("Tab1").Render(area, buf)
	case FocusTab2:
		tui.NewParagraph("Tab2").Render(area, buf)
	default:
		m.renderMenu(area, buf)
	}
}

func (m Menu) renderMenu(area layout.Rect, buf *tui.Buffer) {
	titleArea, itemsArea := layout.Rows(layout.Fixed(3), layout.Min(0)).Split2(area)

	title := tui.NewBlock().WithStyle(tui.DefaultStyle(terminal.RGBGreen))
	tui.Paragraph{Text: tui.Text("Menu"), Block: &title}.Render(titleArea, buf)

	items := make([]tui.ListItem, len(menuItems))
	for i, s := range menuItems {
		items[i] = tui.Item(s)
	}
	block := tui.NewBlock().Titled("Select an item")
	state := m.State
	tui.List{
		Block:           &block,
		Items:           items,
		HighlightStyle:  tui.Style{}.Reversed(),
		HighlightSymbol: ">>",
	}.RenderStateful(itemsArea, buf, &state)
}

func runMenu(env Env) error {
	_, err := app.Run(env.Term, Menu{}, env.Options...)
	return err
}
