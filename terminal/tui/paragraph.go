package tui

import "github.com/lixenwraith/tui-examples/layout"

// Paragraph renders lines of text, optionally wrapped and framed
type Paragraph struct {
	Text      []Line
	Block     *Block
	Alignment Alignment
	Style     Style
	Wrap      bool
	Scroll    int // lines skipped from the top
}

// NewParagraph returns a paragraph of plain text
func NewParagraph(s string) Paragraph {
	return Paragraph{Text: Text(s)}
}

// Render draws the paragraph into area
func (p Paragraph) Render(area layout.Rect, buf *Buffer) {
	buf.SetStyle(area, p.Style)
	if p.Block != nil {
		area = Bordered(*p.Block, area, buf)
	}
	if area.IsEmpty() {
		return
	}

	lines := p.Text
	if p.Wrap {
		lines = wrapLines(lines, area.Width)
	}
	if p.Scroll > 0 {
		if p.Scroll >= len(lines) {
			return
		}
		lines = lines[p.Scroll:]
	}

	for i, line := range lines {
		if i >= area.Height {
			break
		}
		if line.Alignment == AlignLeft {
			line.Alignment = p.Alignment
		}
		line.Style = p.Style.Patch(line.Style)
		line.Render(layout.NewRect(area.X, area.Y+i, area.Width, 1), buf)
	}
}

// wrapLines re-flows each line to width. Wrapped rows take the style of the
// line's first span.
func wrapLines(lines []Line, width int) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Width() <= width {
			out = append(out, l)
			continue
		}
		var spanStyle Style
		if len(l.Spans) > 0 {
			spanStyle = l.Spans[0].Style
		}
		for _, row := range WrapText(l.String(), width) {
			out = append(out, Line{
				Spans:     []Span{Styled(row, spanStyle)},
				Alignment: l.Alignment,
				Style:     l.Style,
			})
		}
	}
	return out
}
