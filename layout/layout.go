package layout

// Direction is the axis a partition splits along
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Flex positions segments when they do not fill the source axis
type Flex uint8

const (
	// Start packs segments against the origin, slack trails
	Start Flex = iota
	// End packs segments against the far edge
	End
	// Center splits slack before and after, the extra cell trailing
	Center
	// SpaceBetween widens the gaps between segments; one segment behaves like Start
	SpaceBetween
)

var flexNames = [...]string{"Start", "End", "Center", "SpaceBetween"}

func (f Flex) String() string {
	if int(f) < len(flexNames) {
		return flexNames[f]
	}
	return "Flex(?)"
}

// Layout is a reusable partition request without its source rect
type Layout struct {
	direction   Direction
	constraints []Constraint
	spacing     int
	flex        Flex
	margin      Margin
}

// Columns returns a layout splitting left to right
func Columns(cs ...Constraint) Layout {
	return Layout{direction: Horizontal, constraints: cs}
}

// Rows returns a layout splitting top to bottom
func Rows(cs ...Constraint) Layout {
	return Layout{direction: Vertical, constraints: cs}
}

// New returns a layout along dir
func New(dir Direction, cs ...Constraint) Layout {
	return Layout{direction: dir, constraints: cs}
}

// WithSpacing sets the gap between adjacent segments
func (l Layout) WithSpacing(n int) Layout {
	l.spacing = max(n, 0)
	return l
}

// WithFlex sets the slack policy
func (l Layout) WithFlex(f Flex) Layout {
	l.flex = f
	return l
}

// WithMargin insets the source before partitioning
func (l Layout) WithMargin(m Margin) Layout {
	l.margin = m
	return l
}

// Split partitions area, returning one rect per constraint
func (l Layout) Split(area Rect) []Rect {
	return Partition(area.Inner(l.margin), l.direction, l.constraints, l.spacing, l.flex)
}

// Split2 is Split for two-constraint layouts
func (l Layout) Split2(area Rect) (Rect, Rect) {
	r := l.Split(area)
	return at(r, 0), at(r, 1)
}

// Split3 is Split for three-constraint layouts
func (l Layout) Split3(area Rect) (Rect, Rect, Rect) {
	r := l.Split(area)
	return at(r, 0), at(r, 1), at(r, 2)
}

func at(rs []Rect, i int) Rect {
	if i < len(rs) {
		return rs[i]
	}
	return Rect{}
}

// CenteredIn returns a rect of pct-x by pct-y of area, centered on both axes
func CenteredIn(area Rect, pctX, pctY int) Rect {
	row := Partition(area, Vertical, []Constraint{Percentage(pctY)}, 0, Center)[0]
	return Partition(row, Horizontal, []Constraint{Percentage(pctX)}, 0, Center)[0]
}

// CenteredFixed returns a w by h rect centered in area, clipped to area
func CenteredFixed(area Rect, w, h int) Rect {
	row := Partition(area, Vertical, []Constraint{Fixed(h)}, 0, Center)[0]
	return Partition(row, Horizontal, []Constraint{Fixed(w)}, 0, Center)[0]
}
