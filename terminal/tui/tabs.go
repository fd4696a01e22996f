package tui

import "github.com/lixenwraith/tui-examples/layout"

// Tabs renders a horizontal tab strip
type Tabs struct {
	Block          *Block
	Titles         []Line
	Selected       int
	Style          Style
	HighlightStyle Style
	Divider        string // between tabs, default "│"
	Padding        int    // spaces each side of a title
}

// NewTabs builds tabs from plain titles
func NewTabs(titles ...string) Tabs {
	t := Tabs{Divider: "│", Padding: 1}
	for _, s := range titles {
		t.Titles = append(t.Titles, NewLine(Raw(s)))
	}
	return t
}

// TabBounds stores position and size of a rendered tab
type TabBounds struct {
	X, W int
}

// Render draws the strip on the first row of area
func (t Tabs) Render(area layout.Rect, buf *Buffer) {
	t.Layout(area, buf)
}

// Layout draws the strip and returns each tab's absolute column span for
// mouse hit testing; tabs that do not fit have zero width
func (t Tabs) Layout(area layout.Rect, buf *Buffer) []TabBounds {
	buf.SetStyle(area, t.Style)
	if t.Block != nil {
		area = Bordered(*t.Block, area, buf)
	}
	bounds := make([]TabBounds, len(t.Titles))
	if area.IsEmpty() {
		return bounds
	}

	divider := t.Divider
	if divider == "" {
		divider = "│"
	}
	pad := PadRight("", max(t.Padding, 0))

	x := area.X
	for i, title := range t.Titles {
		if x >= area.Right() {
			break
		}
		if i > 0 {
			x += buf.SetStringN(x, area.Y, divider, area.Right()-x, t.Style)
		}
		start := x
		x += buf.SetStringN(x, area.Y, pad, area.Right()-x, t.Style)

		style := t.Style
		if i == t.Selected {
			style = style.Patch(t.HighlightStyle)
		}
		title.Style = style.Patch(title.Style)
		w := min(title.Width(), max(area.Right()-x, 0))
		title.Render(layout.NewRect(x, area.Y, w, 1), buf)
		x += w
		x += buf.SetStringN(x, area.Y, pad, area.Right()-x, t.Style)
		bounds[i] = TabBounds{X: start, W: x - start}
	}
	return bounds
}
