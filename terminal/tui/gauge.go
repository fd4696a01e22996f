package tui

import (
	"fmt"
	"math"

	"github.com/lixenwraith/tui-examples/layout"
)

// Progress bar characters
const (
	progressFull  = '█'
	progressEmpty = ' '
)

// eighths are partial block glyphs for sub-cell precision, index = eighths filled
var eighths = [...]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// Gauge draws a horizontal progress bar with a centered label
type Gauge struct {
	Block      *Block
	Ratio      float64 // 0.0-1.0, clamped
	Label      string  // empty shows the percentage
	GaugeStyle Style   // filled part; the label over it is drawn reversed
	Style      Style
	UseUnicode bool // eighth-block precision on the leading edge
}

// Percent returns g with Ratio set from a whole percentage
func (g Gauge) Percent(p int) Gauge {
	g.Ratio = float64(p) / 100
	return g
}

// Render draws the gauge across every row of area
func (g Gauge) Render(area layout.Rect, buf *Buffer) {
	buf.SetStyle(area, g.Style)
	if g.Block != nil {
		area = Bordered(*g.Block, area, buf)
	}
	if area.IsEmpty() {
		return
	}

	ratio := min(max(g.Ratio, 0), 1)
	exact := ratio * float64(area.Width)
	filled := int(math.Floor(exact))
	partial := 0
	if g.UseUnicode {
		partial = int(math.Round((exact - float64(filled)) * 8))
		if partial == 8 {
			filled++
			partial = 0
		}
	}

	fill := g.Style.Patch(g.GaugeStyle)
	r := buf.Region(area)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			switch {
			case x < filled:
				r.Cell(x, y, progressFull, fill)
			case x == filled && partial > 0:
				r.Cell(x, y, eighths[partial], fill)
			default:
				r.Cell(x, y, progressEmpty, g.Style)
			}
		}
	}

	label := g.Label
	if label == "" {
		label = fmt.Sprintf("%d%%", int(math.Round(ratio*100)))
	}
	labelY := r.Height() / 2
	start := (r.Width() - StringWidth(label)) / 2
	col := 0
	for _, ch := range Truncate(label, r.Width()) {
		x := max(start, 0) + col
		style := g.Style.Patch(Style{Fg: g.GaugeStyle.Fg})
		if x < filled {
			// Over the bar the label inverts so it stays readable
			style = Style{Fg: g.GaugeStyle.Bg, Bg: g.GaugeStyle.Fg, Attr: g.GaugeStyle.Attr}
		}
		r.Cell(x, labelY, ch, style)
		col += StringWidth(string(ch))
	}
}
