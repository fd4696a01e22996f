package tui

import (
	"github.com/lixenwraith/tui-examples/layout"
)

// Region represents a rectangular area within a Buffer
// All coordinates are relative to the region's origin
type Region struct {
	buf  *Buffer
	rect layout.Rect
}

// Rect returns the absolute area covered
func (r Region) Rect() layout.Rect { return r.rect }

// Width returns region width
func (r Region) Width() int { return r.rect.Width }

// Height returns region height
func (r Region) Height() int { return r.rect.Height }

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	abs := layout.NewRect(r.rect.X+x, r.rect.Y+y, w, h)
	return Region{buf: r.buf, rect: r.rect.Intersect(abs)}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return Region{buf: r.buf, rect: r.rect.Inner(layout.Uniform(n))}
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style Style) {
	if x < 0 || x >= r.rect.Width || y < 0 || y >= r.rect.Height {
		return
	}
	r.buf.SetCell(r.rect.X+x, r.rect.Y+y, ch, style)
}

// Fill fills entire region with spaces in style
func (r Region) Fill(style Style) {
	r.buf.Fill(r.rect, ' ', style)
}

// Style restyles the region without changing glyphs
func (r Region) Style(style Style) {
	r.buf.SetStyle(r.rect, style)
}

// Text renders text at position, truncates at region edge; returns columns used
func (r Region) Text(x, y int, s string, style Style) int {
	if y < 0 || y >= r.rect.Height || x >= r.rect.Width {
		return 0
	}
	if x < 0 {
		s = skipColumns(s, -x)
		x = 0
	}
	return r.buf.SetStringN(r.rect.X+x, r.rect.Y+y, s, r.rect.Width-x, style)
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, style Style) {
	r.Text(r.rect.Width-StringWidth(s), y, s, style)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, style Style) {
	r.Text((r.rect.Width-StringWidth(s))/2, y, s, style)
}

// TextAligned renders text on row with the given alignment
func (r Region) TextAligned(y int, s string, align Alignment, style Style) {
	switch align {
	case AlignCenter:
		r.TextCenter(y, s, style)
	case AlignRight:
		r.TextRight(y, s, style)
	default:
		r.Text(0, y, s, style)
	}
}
