package tui

import "github.com/lixenwraith/tui-examples/layout"

// Spinner frame sets
var (
	SpinnerASCII   = []rune{'|', '/', '-', '\\'}
	SpinnerBraille = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}
)

// Spinner draws one animation frame followed by an optional label
type Spinner struct {
	Frames []rune // defaults to SpinnerASCII
	Frame  int    // frame counter, wraps
	Label  string
	Style  Style
}

// Glyph returns the rune for the current frame
func (s Spinner) Glyph() rune {
	frames := s.Frames
	if len(frames) == 0 {
		frames = SpinnerASCII
	}
	idx := s.Frame % len(frames)
	if idx < 0 {
		idx += len(frames)
	}
	return frames[idx]
}

// Render draws the spinner on the first row of area
func (s Spinner) Render(area layout.Rect, buf *Buffer) {
	if area.IsEmpty() {
		return
	}
	r := buf.Region(area)
	r.Cell(0, 0, s.Glyph(), s.Style)
	if s.Label != "" {
		r.Text(2, 0, s.Label, s.Style)
	}
}
