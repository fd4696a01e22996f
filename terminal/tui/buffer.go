package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tui-examples/layout"
	"github.com/lixenwraith/tui-examples/terminal"
)

// Buffer is the drawing surface for one frame: a row-major grid of cells.
// Writes outside the grid are dropped.
type Buffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewBuffer allocates a blank buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize changes the grid size, clearing it when the size changes
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}
	b.width, b.height = width, height
	if cap(b.cells) >= width*height {
		b.cells = b.cells[:width*height]
	} else {
		b.cells = make([]terminal.Cell, width*height)
	}
	b.Reset()
}

// Reset blanks every cell
func (b *Buffer) Reset() {
	for i := range b.cells {
		b.cells[i] = terminal.Cell{Rune: ' '}
	}
}

// Size returns the grid dimensions
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Area returns the full buffer rect
func (b *Buffer) Area() layout.Rect {
	return layout.NewRect(0, 0, b.width, b.height)
}

// Cells returns the backing slice, row-major
func (b *Buffer) Cells() []terminal.Cell {
	return b.cells
}

func (b *Buffer) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

// Cell returns the cell at (x, y)
func (b *Buffer) Cell(x, y int) (terminal.Cell, bool) {
	i, ok := b.index(x, y)
	if !ok {
		return terminal.Cell{}, false
	}
	return b.cells[i], true
}

// SetCell writes glyph at (x, y). Attributes are replaced; zero colors in
// style keep the cell's current colors.
func (b *Buffer) SetCell(x, y int, glyph rune, style Style) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	c := &b.cells[i]
	c.Rune = glyph
	c.Attrs = terminal.AttrNone
	style.apply(c)
}

// SetStyle restyles every cell of area without touching glyphs
func (b *Buffer) SetStyle(area layout.Rect, style Style) {
	area = area.Intersect(b.Area())
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			style.apply(&b.cells[y*b.width+x])
		}
	}
}

// Fill writes glyph with style over area
func (b *Buffer) Fill(area layout.Rect, glyph rune, style Style) {
	area = area.Intersect(b.Area())
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			b.SetCell(x, y, glyph, style)
		}
	}
}

// SetString writes s from (x, y) on one row and returns the columns used.
// Wide glyphs take two columns; the second holds a zero rune.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringN(x, y, s, b.width-x, style)
}

// SetStringN is SetString limited to maxWidth columns
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style Style) int {
	if y < 0 || y >= b.height || maxWidth <= 0 {
		return 0
	}
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > maxWidth {
			break
		}
		b.SetCell(x+col, y, r, style)
		if w == 2 {
			b.SetCell(x+col+1, y, 0, style)
		}
		col += w
	}
	return col
}

// Region returns a clipped drawing view over area
func (b *Buffer) Region(area layout.Rect) Region {
	return Region{buf: b, rect: area.Intersect(b.Area())}
}

// Lines returns the buffer contents as text, one string per row. Zero runes
// after wide glyphs are skipped.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		row := make([]rune, 0, b.width)
		for x := 0; x < b.width; x++ {
			if r := b.cells[y*b.width+x].Rune; r != 0 {
				row = append(row, r)
			}
		}
		lines[y] = string(row)
	}
	return lines
}

func cellOf(r rune) terminal.Cell {
	return terminal.Cell{Rune: r}
}
