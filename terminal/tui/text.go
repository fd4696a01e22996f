package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/lixenwraith/tui-examples/layout"
)

// Alignment positions text within its row
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// StringWidth returns display width in terminal columns
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds width columns
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads string with spaces to width columns
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft left-pads string with spaces to width columns
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// PadCenter centers string within width columns
func PadCenter(s string, width int) string {
	w := StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// WrapText wraps text at word boundaries to fit width. Words longer than
// width are broken. Existing newlines are kept.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := wrap.String(wordwrap.String(s, width), width)
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// skipColumns drops the leading n display columns of s
func skipColumns(s string, n int) string {
	col := 0
	for i, r := range s {
		if col >= n {
			return s[i:]
		}
		col += runewidth.RuneWidth(r)
	}
	return ""
}

// Span is a run of text in one style
type Span struct {
	Content string
	Style   Style
}

// Styled returns a span of s in style
func Styled(s string, style Style) Span {
	return Span{Content: s, Style: style}
}

// Raw returns an unstyled span
func Raw(s string) Span {
	return Span{Content: s}
}

// Width returns the span's display width
func (s Span) Width() int {
	return StringWidth(s.Content)
}

// Line is one row of styled spans
type Line struct {
	Spans     []Span
	Alignment Alignment
	Style     Style
}

// NewLine builds a line from spans
func NewLine(spans ...Span) Line {
	return Line{Spans: spans}
}

// Centered returns l centered
func (l Line) Centered() Line {
	l.Alignment = AlignCenter
	return l
}

// RightAligned returns l right-aligned
func (l Line) RightAligned() Line {
	l.Alignment = AlignRight
	return l
}

// Width returns the line's display width
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// String returns the unstyled line text
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Content)
	}
	return b.String()
}

// Render draws the line on the first row of area
func (l Line) Render(area layout.Rect, buf *Buffer) {
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(layout.NewRect(area.X, area.Y, area.Width, 1), l.Style)

	x := area.X
	switch l.Alignment {
	case AlignCenter:
		x += max(area.Width-l.Width(), 0) / 2
	case AlignRight:
		x += max(area.Width-l.Width(), 0)
	}

	for _, s := range l.Spans {
		remaining := area.Right() - x
		if remaining <= 0 {
			return
		}
		x += buf.SetStringN(x, area.Y, s.Content, remaining, l.Style.Patch(s.Style))
	}
}

// Text splits s into unstyled lines on newlines
func Text(s string) []Line {
	parts := strings.Split(s, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = NewLine(Raw(p))
	}
	return lines
}

// StyledText splits s into lines in one style
func StyledText(s string, style Style) []Line {
	lines := Text(s)
	for i := range lines {
		lines[i].Style = style
	}
	return lines
}
