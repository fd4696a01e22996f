package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
)

func TestBufferSetCellClips(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.SetCell(1, 1, 'x', Style{Fg: terminal.RGBRed})
	buf.SetCell(5, 5, 'y', Style{})
	buf.SetCell(-1, 0, 'z', Style{})

	c, ok := buf.Cell(1, 1)
	require.True(t, ok)
	assert.Equal(t, 'x', c.Rune)
	assert.Equal(t, terminal.RGBRed, c.Fg)
	assert.Equal(t, []string{"   ", " x "}, buf.Lines())

	_, ok = buf.Cell(3, 0)
	assert.False(t, ok)
}

func TestBufferSetStyleKeepsGlyphs(t *testing.T) {
	buf := NewBuffer(4, 1)
	buf.SetString(0, 0, "ab", Style{Fg: terminal.RGBRed})
	buf.SetStyle(layout.NewRect(0, 0, 4, 1), Style{Bg: terminal.RGBBlue, Attr: terminal.AttrBold})

	c, _ := buf.Cell(0, 0)
	assert.Equal(t, 'a', c.Rune)
	assert.Equal(t, terminal.RGBRed, c.Fg)
	assert.Equal(t, terminal.RGBBlue, c.Bg)
	assert.Equal(t, terminal.AttrBold, c.Attrs)
}

func TestBufferSetStringWide(t *testing.T) {
	buf := NewBuffer(5, 1)
	n := buf.SetString(0, 0, "日本x", Style{})
	assert.Equal(t, 5, n)
	assert.Equal(t, []string{"日本x"}, buf.Lines())

	buf.Reset()
	n = buf.SetStringN(0, 0, "日本", 3, Style{})
	assert.Equal(t, 2, n)
}

func TestBufferResize(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.SetCell(0, 0, 'a', Style{})
	buf.Resize(3, 1)
	w, h := buf.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)
	assert.Len(t, buf.Cells(), 3)
	assert.Equal(t, []string{"   "}, buf.Lines())
}

func TestRegionRelativeAndClipped(t *testing.T) {
	buf := NewBuffer(6, 3)
	r := buf.Region(layout.NewRect(1, 1, 3, 1))
	r.Text(0, 0, "hello", Style{})
	r.Cell(0, 1, 'x', Style{})
	assert.Equal(t, []string{"      ", " hel  ", "      "}, buf.Lines())

	sub := r.Sub(2, 0, 10, 10)
	assert.Equal(t, layout.NewRect(3, 1, 1, 1), sub.Rect())
}

func TestRegionTextAlignment(t *testing.T) {
	buf := NewBuffer(7, 3)
	r := buf.Region(buf.Area())
	r.TextAligned(0, "ab", AlignLeft, Style{})
	r.TextAligned(1, "ab", AlignCenter, Style{})
	r.TextAligned(2, "ab", AlignRight, Style{})
	assert.Equal(t, []string{"ab     ", "  ab   ", "     ab"}, buf.Lines())
}

func TestClearWidget(t *testing.T) {
	buf := NewBuffer(3, 1)
	buf.SetString(0, 0, "abc", Style{Bg: terminal.RGBBlue})
	Clear{}.Render(layout.NewRect(1, 0, 1, 1), buf)
	assert.Equal(t, []string{"a c"}, buf.Lines())
	c, _ := buf.Cell(1, 0)
	assert.True(t, c.Bg.IsDefault())
}

func TestStylePatch(t *testing.T) {
	base := Style{Fg: terminal.RGBRed, Bg: terminal.RGBBlue, Attr: terminal.AttrBold}
	got := base.Patch(Style{Fg: terminal.RGBGreen, Attr: terminal.AttrReverse})
	assert.Equal(t, terminal.RGBGreen, got.Fg)
	assert.Equal(t, terminal.RGBBlue, got.Bg)
	assert.Equal(t, terminal.AttrBold|terminal.AttrReverse, got.Attr)
	assert.True(t, Style{}.IsZero())
}
