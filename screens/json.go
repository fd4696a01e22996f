package screens

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lixenwraith/tui-examples/app"
	"github.com/lixenwraith/tui-examples/fsm"
	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
	"github.com/lixenwraith/tui-examples/terminal/tui"
)

// EditorScreen is the mode of the json editor
type EditorScreen uint8

const (
	EditorMain EditorScreen = iota
	EditorEditing
	EditorExiting
)

// Field is the input being typed into while editing
type Field uint8

const (
	FieldNone Field = iota
	FieldKey
	FieldValue
)

type editorTrigger uint8

const (
	editorEdit editorTrigger = iota
	editorCommit
	editorCancel
	editorQuit
)

var editorScreens = fsm.NewBuilder[EditorScreen, editorTrigger, struct{}](EditorMain, "Main").
	State(EditorEditing, "Editing").
	State(EditorExiting, "Exiting").
	On(EditorMain, editorEdit, EditorEditing, nil).
	On(EditorEditing, editorCommit, EditorMain, nil).
	On(EditorEditing, editorCancel, EditorMain, nil).
	On(EditorMain, editorQuit, EditorExiting, nil).
	On(EditorExiting, editorCancel, EditorMain, nil).
	MustBuild()

func (s EditorScreen) String() string { return editorScreens.Name(s) }

// Pair is one committed key/value
type Pair struct {
	Key   string
	Value string
}

// JSONEditor collects key/value pairs and optionally prints them as a JSON
// object once the terminal is restored
type JSONEditor struct {
	Screen  EditorScreen
	Editing Field
	Key     tui.InputState
	Value   tui.InputState
	Pairs   []Pair
	// Print is set when the user confirmed output on exit
	Print bool
}

func (e JSONEditor) Update(ev terminal.Event) (JSONEditor, app.Command) {
	if !ev.Pressed() {
		return e, app.Continue
	}
	switch e.Screen {
	case EditorEditing:
		return e.updateEditing(ev)
	case EditorExiting:
		switch {
		case ev.IsRune('y'):
			e.Print = true
			return e, app.Terminate
		case ev.IsRune('n'):
			return e, app.Terminate
		case ev.IsKey(terminal.KeyEscape):
			e.Screen, _ = editorScreens.Next(e.Screen, editorCancel, struct{}{})
		}
		return e, app.Continue
	}

	switch {
	case ev.IsRune('e'):
		e.Screen, _ = editorScreens.Next(e.Screen, editorEdit, struct{}{})
		e.Editing = FieldKey
	case ev.IsRune('q'):
		e.Screen, _ = editorScreens.Next(e.Screen, editorQuit, struct{}{})
	}
	return e, app.Continue
}

func (e JSONEditor) updateEditing(ev terminal.Event) (JSONEditor, app.Command) {
	switch ev.Key {
	case terminal.KeyEnter:
		if e.Editing == FieldKey {
			e.Editing = FieldValue
			return e, app.Continue
		}
		e = e.save()
		e.Screen, _ = editorScreens.Next(e.Screen, editorCommit, struct{}{})
		return e, app.Bell
	case terminal.KeyTab:
		e.Editing = e.Editing.toggle()
	case terminal.KeyEscape:
		e.Screen, _ = editorScreens.Next(e.Screen, editorCancel, struct{}{})
		e.Editing = FieldNone
	case terminal.KeyBackspace:
		e = e.edit(tui.InputState.DeleteBackward)
	case terminal.KeyLeft:
		e = e.edit(tui.InputState.MoveLeft)
	case terminal.KeyRight:
		e = e.edit(tui.InputState.MoveRight)
	case terminal.KeyRune, terminal.KeySpace:
		r := ev.Rune
		e = e.edit(func(s tui.InputState) tui.InputState { return s.Insert(r) })
	}
	return e, app.Continue
}

func (f Field) toggle() Field {
	if f == FieldKey {
		return FieldValue
	}
	return FieldKey
}

func (e JSONEditor) edit(fn func(tui.InputState) tui.InputState) JSONEditor {
	switch e.Editing {
	case FieldKey:
		e.Key = fn(e.Key)
	case FieldValue:
		e.Value = fn(e.Value)
	}
	return e
}

// save commits the inputs, replacing the value of an existing key
func (e JSONEditor) save() JSONEditor {
	p := Pair{Key: e.Key.Value(), Value: e.Value.Value()}
	pairs := make([]Pair, 0, len(e.Pairs)+1)
	replaced := false
	for _, old := range e.Pairs {
		if old.Key == p.Key {
			old, replaced = p, true
		}
		pairs = append(pairs, old)
	}
	if !replaced {
		pairs = append(pairs, p)
	}
	e.Pairs = pairs
	e.Key, e.Value = tui.InputState{}, tui.InputState{}
	e.Editing = FieldNone
	return e
}

// WriteJSON writes the pairs as one JSON object followed by a newline
func (e JSONEditor) WriteJSON(w io.Writer) error {
	obj := make(map[string]string, len(e.Pairs))
	for _, p := range e.Pairs {
		obj[p.Key] = p.Value
	}
	out, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("encode pairs: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func (e JSONEditor) Render(area layout.Rect, buf *tui.Buffer) {
	title, content, bottom := layout.Rows(layout.Fixed(3), layout.Min(1), layout.Fixed(3)).Split3(area)

	titleBlock := tui.NewBlock()
	tui.Paragraph{
		Text:  tui.StyledText("Create New Json", tui.DefaultStyle(terminal.RGBGreen)),
		Block: &titleBlock,
	}.Render(title, buf)

	items := make([]tui.ListItem, len(e.Pairs))
	for i, p := range e.Pairs {
		items[i] = tui.ListItem{Content: tui.NewLine(tui.Styled(
			fmt.Sprintf("%-25s : %s", p.Key, p.Value), tui.DefaultStyle(terminal.RGBYellow)))}
	}
	tui.List{Items: items}.Render(content, buf)

	e.renderBottom(bottom, buf)

	if e.Editing != FieldNone {
		e.renderEditing(area, buf)
	}
	if e.Screen == EditorExiting {
		renderExit(area, buf)
	}
}

func (e JSONEditor) renderBottom(area layout.Rect, buf *tui.Buffer) {
	var mode tui.Span
	switch e.Screen {
	case EditorEditing:
		mode = tui.Styled("Editing Mode", tui.DefaultStyle(terminal.RGBYellow))
	case EditorExiting:
		mode = tui.Styled("Exiting", tui.DefaultStyle(terminal.RGBRed))
	default:
		mode = tui.Styled("Normal Mode", tui.DefaultStyle(terminal.RGBGreen))
	}

	var editing tui.Span
	switch e.Editing {
	case FieldKey:
		editing = tui.Styled("Editing Json Key", tui.DefaultStyle(terminal.RGBGreen))
	case FieldValue:
		editing = tui.Styled("Editing Json Value", tui.DefaultStyle(lightGreen))
	default:
		editing = tui.Styled("Not Editing Anything", tui.DefaultStyle(terminal.RGBDarkGray))
	}

	keys := "(q) to quit / (e) to make new pair"
	if e.Screen == EditorEditing {
		keys = "(ESC) to cancel / (TAB) to switch boxes/enter to complete"
	}

	modeArea, keysArea := layout.Columns(layout.Percentage(50), layout.Percentage(50)).Split2(area)
	block := tui.NewBlock()
	tui.Paragraph{
		Text:  []tui.Line{tui.NewLine(mode, tui.Styled(" | ", tui.DefaultStyle(terminal.RGBWhite)), editing)},
		Block: &block,
	}.Render(modeArea, buf)
	tui.Paragraph{
		Text:  tui.StyledText(keys, tui.DefaultStyle(terminal.RGBRed)),
		Block: &block,
	}.Render(keysArea, buf)
}

func (e JSONEditor) renderEditing(area layout.Rect, buf *tui.Buffer) {
	box := layout.CenteredIn(area, 60, 25)
	tui.Block{
		Title: tui.NewLine(tui.Raw("Enter a new key-value pair")),
		Style: tui.Style{Bg: terminal.RGBDarkGray},
	}.Render(box, buf)

	keyArea, valueArea := layout.Columns(layout.Percentage(50), layout.Percentage(50)).
		WithMargin(layout.Uniform(1)).
		Split2(box)

	active := tui.Style{Fg: terminal.RGBBlack, Bg: lightYel}
	keyBlock := tui.NewBlock().Titled("Key")
	valueBlock := tui.NewBlock().Titled("Value")
	switch e.Editing {
	case FieldKey:
		keyBlock = keyBlock.WithStyle(active)
	case FieldValue:
		valueBlock = valueBlock.WithStyle(active)
	}

	tui.Paragraph{Text: tui.Text(e.Key.Value()), Block: &keyBlock}.Render(keyArea, buf)
	tui.Paragraph{Text: tui.Text(e.Value.Value()), Block: &valueBlock}.Render(valueArea, buf)
}

func renderExit(area layout.Rect, buf *tui.Buffer) {
	tui.Clear{}.Render(area, buf)
	block := tui.Block{
		Title: tui.NewLine(tui.Raw("Y/N")),
		Style: tui.Style{Bg: terminal.RGBDarkGray},
	}
	tui.Paragraph{
		Text:  tui.StyledText("Would you like to output the buffer as json? (y/n)", tui.DefaultStyle(terminal.RGBRed)),
		Block: &block,
		Wrap:  true,
	}.Render(layout.CenteredIn(area, 60, 25), buf)
}

func runJSONEditor(env Env) error {
	final, err := app.Run(env.Term, JSONEditor{}, env.Options...)
	if err != nil || !final.Print || env.Out == nil {
		return err
	}
	return final.WriteJSON(env.Out)
}
