package tui

import (
	"strconv"

	"github.com/lixenwraith/tui-examples/layout"
)

// Bar is one bar of a BarChart
type Bar struct {
	Label     string
	Value     int
	Style     Style  // bar fill; zero uses BarChart.BarStyle
	TextValue string // shown instead of the number when set
}

// BarChart draws bars vertically (bottom-up) or horizontally (left-to-right)
type BarChart struct {
	Block      *Block
	Bars       []Bar
	Direction  layout.Direction // Vertical grows bars upward
	BarWidth   int              // cells across each bar, default 1
	BarGap     int              // cells between bars
	Max        int              // scale maximum; 0 uses the largest value
	BarStyle   Style
	ValueStyle Style
	LabelStyle Style
	Style      Style
}

// Render draws the chart into area
func (c BarChart) Render(area layout.Rect, buf *Buffer) {
	buf.SetStyle(area, c.Style)
	if c.Block != nil {
		area = Bordered(*c.Block, area, buf)
	}
	if area.IsEmpty() || len(c.Bars) == 0 {
		return
	}
	if c.Direction == layout.Horizontal {
		c.renderHorizontal(area, buf)
		return
	}
	c.renderVertical(area, buf)
}

func (c BarChart) scale() int {
	if c.Max > 0 {
		return c.Max
	}
	top := 0
	for _, b := range c.Bars {
		top = max(top, b.Value)
	}
	return max(top, 1)
}

func (c BarChart) barStyle(b Bar) Style {
	if b.Style.IsZero() {
		return c.Style.Patch(c.BarStyle)
	}
	return c.Style.Patch(b.Style)
}

func (b Bar) text() string {
	if b.TextValue != "" {
		return b.TextValue
	}
	return strconv.Itoa(b.Value)
}

// renderVertical reserves the bottom row for labels and draws the value
// inside the top of each bar when it fits
func (c BarChart) renderVertical(area layout.Rect, buf *Buffer) {
	barW := max(c.BarWidth, 1)
	barsH := area.Height - 1
	if barsH <= 0 {
		return
	}
	top := c.scale()
	r := buf.Region(area)

	x := 0
	for _, b := range c.Bars {
		if x+barW > r.Width() {
			break
		}
		h := min(b.Value*barsH*8/top, barsH*8) // in eighths
		style := c.barStyle(b)
		for row := 0; row < barsH; row++ {
			level := h - row*8
			y := barsH - 1 - row
			switch {
			case level >= 8:
				for i := 0; i < barW; i++ {
					r.Cell(x+i, y, progressFull, style)
				}
			case level > 0:
				for i := 0; i < barW; i++ {
					r.Cell(x+i, y, verticalEighths[level], style)
				}
			}
		}

		if v := b.text(); StringWidth(v) <= barW && h >= 8 {
			vs := Style{Fg: style.Bg, Bg: style.Fg}.Patch(c.ValueStyle)
			r.Text(x+(barW-StringWidth(v))/2, barsH-1, v, vs)
		}
		label := Truncate(b.Label, barW)
		r.Text(x+(barW-StringWidth(label))/2, barsH, label, c.Style.Patch(c.LabelStyle))

		x += barW + c.BarGap
	}
}

// verticalEighths are lower partial blocks, index = eighths filled
var verticalEighths = [...]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// renderHorizontal draws one bar per row group, label column on the left
// and the value after the bar
func (c BarChart) renderHorizontal(area layout.Rect, buf *Buffer) {
	barH := max(c.BarWidth, 1)
	labelW := 0
	valueW := 0
	for _, b := range c.Bars {
		labelW = max(labelW, StringWidth(b.Label))
		valueW = max(valueW, StringWidth(b.text()))
	}
	if labelW > 0 {
		labelW++
	}
	barsW := area.Width - labelW - valueW - 1
	if barsW <= 0 {
		return
	}
	top := c.scale()
	r := buf.Region(area)

	y := 0
	for _, b := range c.Bars {
		if y+barH > r.Height() {
			break
		}
		w := min(b.Value*barsW*8/top, barsW*8)
		style := c.barStyle(b)
		for row := 0; row < barH; row++ {
			for col := 0; col < barsW; col++ {
				level := w - col*8
				switch {
				case level >= 8:
					r.Cell(labelW+col, y+row, progressFull, style)
				case level > 0:
					r.Cell(labelW+col, y+row, eighths[level], style)
				}
			}
		}
		mid := y + barH/2
		r.Text(0, mid, b.Label, c.Style.Patch(c.LabelStyle))
		r.Text(labelW+(w+7)/8+1, mid, b.text(), c.Style.Patch(c.ValueStyle))
		y += barH + c.BarGap
	}
}
