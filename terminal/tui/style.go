package tui

import (
	"github.com/lixenwraith/tui-examples/terminal"
)

// Style bundles foreground, background, and attributes for text rendering.
// Zero colors are transparent: they leave the cell's existing color.
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// DefaultStyle returns style with only a foreground (transparent bg)
func DefaultStyle(fg terminal.RGB) Style {
	return Style{Fg: fg}
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg == (terminal.RGB{}) && s.Bg == (terminal.RGB{}) && s.Attr == terminal.AttrNone
}

// Foreground returns s with fg set
func (s Style) Foreground(fg terminal.RGB) Style {
	s.Fg = fg
	return s
}

// Background returns s with bg set
func (s Style) Background(bg terminal.RGB) Style {
	s.Bg = bg
	return s
}

// With returns s with attr added
func (s Style) With(attr terminal.Attr) Style {
	s.Attr |= attr
	return s
}

// Bold returns s with bold added
func (s Style) Bold() Style { return s.With(terminal.AttrBold) }

// Reversed returns s with reverse video added
func (s Style) Reversed() Style { return s.With(terminal.AttrReverse) }

// Patch layers other over s: non-zero colors win, attributes accumulate
func (s Style) Patch(other Style) Style {
	if !other.Fg.IsDefault() {
		s.Fg = other.Fg
	}
	if !other.Bg.IsDefault() {
		s.Bg = other.Bg
	}
	s.Attr |= other.Attr
	return s
}

// apply writes the style onto a cell, keeping colors the style leaves unset
func (s Style) apply(c *terminal.Cell) {
	if !s.Fg.IsDefault() {
		c.Fg = s.Fg
	}
	if !s.Bg.IsDefault() {
		c.Bg = s.Bg
	}
	c.Attrs |= s.Attr
}
