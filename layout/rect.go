package layout

import "fmt"

// Rect is an axis-aligned cell region. Width and Height are never negative.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rect, clamping negative dimensions to zero
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: max(w, 0), Height: max(h, 0)}
}

// Right returns the exclusive right edge
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether the rect covers no cells
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Area returns the number of cells covered
func (r Rect) Area() int { return r.Width * r.Height }

// Contains reports whether the cell (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r.
// An empty rect is contained by every rect.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Intersect returns the overlap of two rects, or an empty rect at r's origin
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersects reports whether the rects share at least one cell
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rect containing both
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Inner shrinks the rect by margin on each side, collapsing to zero size if
// the margin exceeds the rect
func (r Rect) Inner(m Margin) Rect {
	if r.Width < 2*m.Horizontal || r.Height < 2*m.Vertical {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{
		X:      r.X + m.Horizontal,
		Y:      r.Y + m.Vertical,
		Width:  r.Width - 2*m.Horizontal,
		Height: r.Height - 2*m.Vertical,
	}
}

// Offset returns the rect moved by (dx, dy)
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Centered returns a w x h rect centered in r, clipped to r
func (r Rect) Centered(w, h int) Rect {
	w = max(min(w, r.Width), 0)
	h = max(min(h, r.Height), 0)
	return Rect{X: r.X + (r.Width-w)/2, Y: r.Y + (r.Height-h)/2, Width: w, Height: h}
}

// Rows splits the rect into one-cell-high rows, top to bottom
func (r Rect) Rows() []Rect {
	rows := make([]Rect, 0, max(r.Height, 0))
	for y := r.Y; y < r.Bottom(); y++ {
		rows = append(rows, Rect{X: r.X, Y: y, Width: r.Width, Height: 1})
	}
	return rows
}

// Columns splits the rect into one-cell-wide columns, left to right
func (r Rect) Columns() []Rect {
	cols := make([]Rect, 0, max(r.Width, 0))
	for x := r.X; x < r.Right(); x++ {
		cols = append(cols, Rect{X: x, Y: r.Y, Width: 1, Height: r.Height})
	}
	return cols
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%d,%d %dx%d}", r.X, r.Y, r.Width, r.Height)
}

// Margin is a uniform inset applied on both sides of each axis
type Margin struct {
	Horizontal int
	Vertical   int
}

// Uniform returns a margin of n cells on every side
func Uniform(n int) Margin {
	return Margin{Horizontal: n, Vertical: n}
}
