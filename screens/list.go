package screens

import (
	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

// Status of a todo item
type Status uint8

const (
	StatusTodo Status = iota
	StatusCompleted
)

func (s Status) toggle() Status {
	if s == StatusTodo {
		return StatusCompleted
	}
	return StatusTodo
}

// TodoItem is one row of the todo list
type TodoItem struct {
	Todo   string
	Info   string
	Status Status
}

var (
	todoHeaderStyle = tui.Style{Fg: slate100, Bg: blue800}
	selectedStyle   = tui.Style{Bg: slate800}.Bold()
	normalRowBg     = slate950
	altRowBg        = slate900
)

// Todo is a selectable list of tasks with a detail pane
type Todo struct {
	Items []TodoItem
	State tui.ListState
}

func NewTodo() Todo {
	return Todo{Items: []TodoItem{
		{"Rewrite everything in Go!", "I can't hold my inner voice. It tells me to rewrite the complete universe in Go", StatusTodo},
		{"Port your tui apps to tcell", "Yes, you heard that right. Go and replace your raw escape codes with tcell.", StatusCompleted},
		{"Pet your cat", "Minnak loves to be pet by you! Don't forget to pet and give some treats!", StatusTodo},
		{"Walk with your dog", "Max is bored, go walk with him!", StatusTodo},
		{"Pay the bills", "Pay the train subscription!!!", StatusCompleted},
		{"Refactor list example", "If you see this info that means I completed this task!", StatusCompleted},
	}}
}

func (t Todo) Update(ev terminal.Event) (Todo, app.Command) {
	if !ev.Pressed() {
		return t, app.Continue
	}
	n := len(t.Items)
	switch {
	case isQuit(ev):
		return t, app.Terminate
	case ev.IsRune('h') || ev.IsKey(terminal.KeyLeft):
		t.State.Unselect()
	case ev.IsRune('j') || ev.IsKey(terminal.KeyDown):
		t.State.Next(n)
	case ev.IsRune('k') || ev.IsKey(terminal.KeyUp):
		t.State.Previous(n)
	case ev.IsRune('g') || ev.IsKey(terminal.KeyHome):
		t.State.First(n)
	case ev.IsRune('G') || ev.IsKey(terminal.KeyEnd):
		t.State.Last(n)
	case ev.IsRune('l') || ev.IsKey(terminal.KeyRight) || ev.IsKey(terminal.KeyEnter):
		t = t.toggleSelected()
	}
	return t, app.Continue
}

// toggleSelected copies the items so earlier states keep their view
func (t Todo) toggleSelected() Todo {
	i, ok := t.State.Selected()
	if !ok || i >= len(t.Items) {
		return t
	}
	items := make([]TodoItem, len(t.Items))
	copy(items, t.Items)
	items[i].Status = items[i].Status.toggle()
	t.Items = items
	return t
}

func (t Todo) Render(area layout.Rect, buf *tui.Buffer) {
	header, main, footer := layout.Rows(layout.Fixed(2), layout.Fill(1), layout.Fixed(1)).Split3(area)
	listArea, itemArea := layout.Rows(layout.Fill(1), layout.Fill(1)).Split2(main)

	centered(header, buf, "List Example", bold)
	centered(footer, buf, "Use ↓↑ to move, ← to unselect, → to change status, g/G to go top/bottom.", plain)

	t.renderList(listArea, buf)
	t.renderSelected(itemArea, buf)
}

func (t Todo) renderList(area layout.Rect, buf *tui.Buffer) {
	block := tui.Block{
		Borders:     tui.BorderTop,
		Title:       tui.NewLine(tui.Raw("TODO List")).Centered(),
		BorderStyle: todoHeaderStyle,
		Style:       tui.Style{Bg: normalRowBg},
	}

	items := make([]tui.ListItem, len(t.Items))
	for i, it := range t.Items {
		bg := normalRowBg
		if i%2 == 1 {
			bg = altRowBg
		}
		items[i] = tui.ListItem{Content: todoLine(it), Style: tui.Style{Bg: bg}}
	}

	state := t.State
	tui.List{
		Block:            &block,
		Items:            items,
		HighlightStyle:   selectedStyle,
		HighlightSymbol:  ">",
		HighlightSpacing: true,
	}.RenderStateful(area, buf, &state)
}

func todoLine(it TodoItem) tui.Line {
	if it.Status == StatusCompleted {
		return tui.NewLine(tui.Styled(" ✓ "+it.Todo, tui.DefaultStyle(green500)))
	}
	return tui.NewLine(tui.Styled(" ☐ "+it.Todo, tui.DefaultStyle(slate200)))
}

func (t Todo) renderSelected(area layout.Rect, buf *tui.Buffer) {
	info := "Nothing selected..."
	if i, ok := t.State.Selected(); ok && i < len(t.Items) {
		it := t.Items[i]
		if it.Status == StatusCompleted {
			info = "✓ DONE: " + it.Info
		} else {
			info = "☐ TODO: " + it.Info
		}
	}

	block := tui.Block{
		Borders:     tui.BorderTop,
		Title:       tui.NewLine(tui.Raw("TODO Info")).Centered(),
		BorderStyle: todoHeaderStyle,
		Style:       tui.Style{Bg: normalRowBg},
		Padding:     layout.Margin{Horizontal: 1},
	}
	tui.Paragraph{
		Text:  tui.Text(info),
		Block: &block,
		Style: tui.DefaultStyle(slate200),
		Wrap:  true,
	}.Render(area, buf)
}

func runTodo(env Env) error {
	_, err := app.Run(env.Term, NewTodo(), env.Options...)
	return err
}
