package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color. The zero value renders as the terminal's
// default color, so pure black is written as RGBBlack.
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the darkest color distinct from the default
var RGBBlack = RGB{1, 1, 1}

// Named colors used across the examples
var (
	RGBWhite    = RGB{255, 255, 255}
	RGBGray     = RGB{128, 128, 128}
	RGBDarkGray = RGB{64, 64, 64}
	RGBRed      = RGB{220, 50, 47}
	RGBGreen    = RGB{80, 200, 80}
	RGBYellow   = RGB{240, 200, 60}
	RGBBlue     = RGB{60, 120, 220}
	RGBCyan     = RGB{100, 200, 220}
	RGBMagenta  = RGB{200, 90, 200}
)

// IsDefault reports whether the color defers to the terminal default
func (c RGB) IsDefault() bool {
	return c == RGB{}
}

// Hex returns the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend interpolates toward other in Lab space, t in [0,1]
func (c RGB) Blend(other RGB, t float64) RGB {
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return other
	}
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	return fromColorful(a.BlendLab(b, t).Clamped())
}

// Darken scales lightness down by amount in [0,1]
func (c RGB) Darken(amount float64) RGB {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l := col.Hsl()
	return fromColorful(colorful.Hsl(h, s, l*(1-min(max(amount, 0), 1))).Clamped())
}

// ParseHex parses #rrggbb or #rgb
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(col), nil
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	out := RGB{r, g, b}
	if out.IsDefault() {
		return RGBBlack
	}
	return out
}

func (c RGB) tcell() tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
