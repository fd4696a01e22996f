package tui

import (
	"github.com/lixenwraith/tui-examples/layout"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Borders selects which block edges are drawn (bitmask)
type Borders uint8

const (
	BorderNone   Borders = 0
	BorderTop    Borders = 1 << 0
	BorderRight  Borders = 1 << 1
	BorderBottom Borders = 1 << 2
	BorderLeft   Borders = 1 << 3
	BorderAll            = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Block is a bordered, titled frame around other content
type Block struct {
	Borders     Borders
	Line        LineType
	Title       Line
	TitleBottom Line
	Style       Style // whole area, under borders and content
	BorderStyle Style
	Padding     layout.Margin
}

// NewBlock returns a block with all borders
func NewBlock() Block {
	return Block{Borders: BorderAll}
}

// Titled returns b with a plain top title
func (b Block) Titled(title string) Block {
	b.Title = NewLine(Raw(title))
	return b
}

// WithTitle returns b with a styled top title
func (b Block) WithTitle(title Line) Block {
	b.Title = title
	return b
}

// WithLine returns b with a border line type
func (b Block) WithLine(line LineType) Block {
	b.Line = line
	return b
}

// WithStyle returns b with a fill style
func (b Block) WithStyle(s Style) Block {
	b.Style = s
	return b
}

// WithBorderStyle returns b with a border style
func (b Block) WithBorderStyle(s Style) Block {
	b.BorderStyle = s
	return b
}

// Inner returns the content area left inside borders and padding
func (b Block) Inner(area layout.Rect) layout.Rect {
	x, y, w, h := area.X, area.Y, area.Width, area.Height
	if b.Borders&BorderLeft != 0 {
		x++
		w--
	}
	if b.Borders&BorderRight != 0 {
		w--
	}
	if b.Borders&BorderTop != 0 || b.Title.Width() > 0 {
		y++
		h--
	}
	if b.Borders&BorderBottom != 0 {
		h--
	}
	return layout.NewRect(x, y, w, h).Inner(b.Padding)
}

// Render draws the block frame; content is drawn separately into Inner
func (b Block) Render(area layout.Rect, buf *Buffer) {
	area = area.Intersect(buf.Area())
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, b.Style)
	b.renderBorders(area, buf)
	b.renderTitle(area, area.Y, b.Title, buf)
	if b.Borders&BorderBottom != 0 {
		b.renderTitle(area, area.Bottom()-1, b.TitleBottom, buf)
	}
}

func (b Block) renderBorders(area layout.Rect, buf *Buffer) {
	line := b.Line
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]
	style := b.Style.Patch(b.BorderStyle)
	r := buf.Region(area)
	w, h := r.Width(), r.Height()

	if b.Borders&BorderTop != 0 {
		for x := 0; x < w; x++ {
			r.Cell(x, 0, chars[boxH], style)
		}
	}
	if b.Borders&BorderBottom != 0 {
		for x := 0; x < w; x++ {
			r.Cell(x, h-1, chars[boxH], style)
		}
	}
	if b.Borders&BorderLeft != 0 {
		for y := 0; y < h; y++ {
			r.Cell(0, y, chars[boxV], style)
		}
	}
	if b.Borders&BorderRight != 0 {
		for y := 0; y < h; y++ {
			r.Cell(w-1, y, chars[boxV], style)
		}
	}

	// Corners
	if b.Borders&(BorderTop|BorderLeft) == BorderTop|BorderLeft {
		r.Cell(0, 0, chars[boxTL], style)
	}
	if b.Borders&(BorderTop|BorderRight) == BorderTop|BorderRight {
		r.Cell(w-1, 0, chars[boxTR], style)
	}
	if b.Borders&(BorderBottom|BorderLeft) == BorderBottom|BorderLeft {
		r.Cell(0, h-1, chars[boxBL], style)
	}
	if b.Borders&(BorderBottom|BorderRight) == BorderBottom|BorderRight {
		r.Cell(w-1, h-1, chars[boxBR], style)
	}
}

// renderTitle places title on row y between the corner cells
func (b Block) renderTitle(area layout.Rect, y int, title Line, buf *Buffer) {
	if title.Width() == 0 {
		return
	}
	x, w := area.X, area.Width
	if b.Borders&BorderLeft != 0 {
		x++
		w--
	}
	if b.Borders&BorderRight != 0 {
		w--
	}
	title.Style = b.Style.Patch(title.Style)
	title.Render(layout.NewRect(x, y, w, 1), buf)
}

// Bordered draws block b around area and returns the inner content rect
func Bordered(b Block, area layout.Rect, buf *Buffer) layout.Rect {
	b.Render(area, buf)
	return b.Inner(area)
}
