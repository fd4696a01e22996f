package tui

import "github.com/lixenwraith/tui-examples/layout"

// Widget paints itself into area of buf. Widgets are values rebuilt each
// frame and keep nothing between calls.
type Widget interface {
	Render(area layout.Rect, buf *Buffer)
}

// StatefulWidget paints itself using externally owned state, which it may
// adjust (for example to keep a selection scrolled into view)
type StatefulWidget[S any] interface {
	RenderStateful(area layout.Rect, buf *Buffer, state S)
}

// WidgetFunc adapts a function to Widget
type WidgetFunc func(area layout.Rect, buf *Buffer)

// Render calls f
func (f WidgetFunc) Render(area layout.Rect, buf *Buffer) {
	f(area, buf)
}

// Clear blanks its area, used under popups
type Clear struct{}

// Render resets every cell in area
func (Clear) Render(area layout.Rect, buf *Buffer) {
	area = area.Intersect(buf.Area())
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			buf.cells[y*buf.width+x] = blankCell
		}
	}
}

var blankCell = cellOf(' ')

// Fill paints its area with a background style
type Fill struct {
	Style Style
}

// Render fills area with spaces in f.Style
func (f Fill) Render(area layout.Rect, buf *Buffer) {
	buf.Fill(area, ' ', f.Style)
}
