package layout

// Partition splits source along dir into len(cs) rects, result[i] sized by cs[i].
// Gaps of spacing cells separate adjacent segments; spacing that cannot fit is
// reduced so the result stays inside source. The cross axis spans source.
func Partition(source Rect, dir Direction, cs []Constraint, spacing int, flex Flex) []Rect {
	n := len(cs)
	rects := make([]Rect, n)
	if n == 0 {
		return rects
	}

	total := source.Height
	if dir == Horizontal {
		total = source.Width
	}

	spacing = max(spacing, 0)
	if n > 1 && spacing*(n-1) > total {
		spacing = total / (n - 1)
	}
	available := total - spacing*(n-1)

	sizes := solve(cs, total, available)
	offsets := place(sizes, available, spacing, flex)

	for i := range rects {
		if dir == Horizontal {
			rects[i] = Rect{X: source.X + offsets[i], Y: source.Y, Width: sizes[i], Height: source.Height}
		} else {
			rects[i] = Rect{X: source.X, Y: source.Y + offsets[i], Width: source.Width, Height: sizes[i]}
		}
	}
	return rects
}

// solve resolves segment lengths so their sum never exceeds available
func solve(cs []Constraint, total, available int) []int {
	sizes := make([]int, len(cs))
	used := 0
	for i, c := range cs {
		sizes[i] = c.resolve(total)
		used += sizes[i]
	}

	switch {
	case used < available:
		grow(cs, sizes, available-used)
	case used > available:
		shrink(cs, sizes, used-available)
	}
	return sizes
}

// grow hands surplus to Fill segments by weight, or to Min segments evenly
// when there are no fills. Max and exact segments never grow.
func grow(cs []Constraint, sizes []int, surplus int) {
	var fills, weighted, mins []int
	weight := 0
	for i, c := range cs {
		switch c.kind {
		case kindFill:
			fills = append(fills, i)
			if c.a > 0 {
				weighted = append(weighted, i)
				weight += c.a
			}
		case kindMin:
			mins = append(mins, i)
		}
	}

	switch {
	case weight > 0:
		given := 0
		for _, i := range weighted {
			share := surplus * cs[i].a / weight
			sizes[i] += share
			given += share
		}
		spread(sizes, weighted, surplus-given)
	case len(fills) > 0:
		even(sizes, fills, surplus)
	case len(mins) > 0:
		even(sizes, mins, surplus)
	}
}

// even splits amount equally, the remainder going left to right
func even(sizes []int, idx []int, amount int) {
	share := amount / len(idx)
	for _, i := range idx {
		sizes[i] += share
	}
	spread(sizes, idx, amount-share*len(idx))
}

// spread adds one cell per segment, left to right, until rem is spent
func spread(sizes []int, idx []int, rem int) {
	for k := 0; rem > 0 && len(idx) > 0; k++ {
		sizes[idx[k%len(idx)]]++
		rem--
	}
}

// shrinkOrder is the sequence in which segment classes give up space
var shrinkOrder = []func(Constraint) bool{
	func(c Constraint) bool { return c.kind == kindFill },
	func(c Constraint) bool { return c.kind == kindMax },
	func(c Constraint) bool { return c.kind == kindMin },
	Constraint.exact,
}

// shrink removes deficit cells class by class, last segment first
func shrink(cs []Constraint, sizes []int, deficit int) {
	for _, match := range shrinkOrder {
		for i := len(cs) - 1; i >= 0 && deficit > 0; i-- {
			if !match(cs[i]) {
				continue
			}
			take := min(sizes[i], deficit)
			sizes[i] -= take
			deficit -= take
		}
		if deficit == 0 {
			return
		}
	}
}

// place returns each segment's offset along the axis
func place(sizes []int, available, spacing int, flex Flex) []int {
	n := len(sizes)
	used := 0
	for _, s := range sizes {
		used += s
	}
	slack := max(available-used, 0)

	lead := 0
	gaps := make([]int, n)
	for i := 1; i < n; i++ {
		gaps[i] = spacing
	}

	switch flex {
	case End:
		lead = slack
	case Center:
		lead = slack / 2
	case SpaceBetween:
		if n > 1 {
			extra := make([]int, n)
			idx := make([]int, 0, n-1)
			for i := 1; i < n; i++ {
				idx = append(idx, i)
			}
			even(extra, idx, slack)
			for i := 1; i < n; i++ {
				gaps[i] += extra[i]
			}
		}
	}

	offsets := make([]int, n)
	pos := lead
	for i := range sizes {
		pos += gaps[i]
		offsets[i] = pos
		pos += sizes[i]
	}
	return offsets
}
