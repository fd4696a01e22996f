package tui

import "github.com/lixenwraith/tui-examples/layout"

// ListItem is one row of a List
type ListItem struct {
	Content Line
	Style   Style
}

// Item returns a plain-text list item
func Item(s string) ListItem {
	return ListItem{Content: NewLine(Raw(s))}
}

// List renders items with a highlighted selection from ListState
type List struct {
	Block           *Block
	Items           []ListItem
	Style           Style
	HighlightStyle  Style
	HighlightSymbol string
	// HighlightSpacing reserves the symbol column even without a selection
	HighlightSpacing bool
}

// Render draws the list with nothing selected
func (l List) Render(area layout.Rect, buf *Buffer) {
	var state ListState
	l.RenderStateful(area, buf, &state)
}

// RenderStateful draws the list and scrolls state so the selection is visible
func (l List) RenderStateful(area layout.Rect, buf *Buffer, state *ListState) {
	buf.SetStyle(area, l.Style)
	if l.Block != nil {
		area = Bordered(*l.Block, area, buf)
	}
	if area.IsEmpty() {
		return
	}

	state.EnsureVisible(area.Height, len(l.Items))
	selected, hasSelection := state.Selected()

	symbolW := 0
	if hasSelection || l.HighlightSpacing {
		symbolW = StringWidth(l.HighlightSymbol)
	}
	blank := PadRight("", symbolW)

	for row := 0; row < area.Height; row++ {
		i := state.Offset + row
		if i >= len(l.Items) {
			break
		}
		item := l.Items[i]
		rowRect := layout.NewRect(area.X, area.Y+row, area.Width, 1)
		style := l.Style.Patch(item.Style)
		buf.SetStyle(rowRect, style)

		x := area.X
		if symbolW > 0 {
			symbol := blank
			if hasSelection && i == selected {
				symbol = l.HighlightSymbol
			}
			x += buf.SetStringN(x, rowRect.Y, symbol, area.Width, style)
		}

		content := item.Content
		content.Style = style.Patch(content.Style)
		content.Render(layout.NewRect(x, rowRect.Y, area.Right()-x, 1), buf)

		if hasSelection && i == selected {
			buf.SetStyle(rowRect, l.HighlightStyle)
		}
	}
}
