package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidConstraint is returned (or panicked with) when a constraint is
// built from out-of-range input
var ErrInvalidConstraint = errors.New("invalid constraint")

type kind uint8

const (
	kindFixed kind = iota
	kindMin
	kindMax
	kindPercentage
	kindRatio
	kindFill
)

// Constraint sizes one segment of a partition. The zero value is Fixed(0).
// Constraints are comparable with ==.
type Constraint struct {
	kind kind
	a, b int
}

// Fixed requests exactly n cells
func Fixed(n int) Constraint { return must(NewFixed(n)) }

// Min requests at least n cells; with no Fill siblings it absorbs leftover space
func Min(n int) Constraint { return must(NewMin(n)) }

// Max requests at most n cells
func Max(n int) Constraint { return must(NewMax(n)) }

// Percentage requests pct percent of the source axis, rounded half up
func Percentage(pct int) Constraint { return must(NewPercentage(pct)) }

// Ratio requests num/den of the source axis, rounded down
func Ratio(num, den int) Constraint { return must(NewRatio(num, den)) }

// Fill takes a share of the leftover space proportional to weight
func Fill(weight int) Constraint { return must(NewFill(weight)) }

// NewFixed is the checked form of Fixed
func NewFixed(n int) (Constraint, error) {
	if n < 0 {
		return Constraint{}, fmt.Errorf("%w: fixed length %d is negative", ErrInvalidConstraint, n)
	}
	return Constraint{kind: kindFixed, a: n}, nil
}

// NewMin is the checked form of Min
func NewMin(n int) (Constraint, error) {
	if n < 0 {
		return Constraint{}, fmt.Errorf("%w: min length %d is negative", ErrInvalidConstraint, n)
	}
	return Constraint{kind: kindMin, a: n}, nil
}

// NewMax is the checked form of Max
func NewMax(n int) (Constraint, error) {
	if n < 0 {
		return Constraint{}, fmt.Errorf("%w: max length %d is negative", ErrInvalidConstraint, n)
	}
	return Constraint{kind: kindMax, a: n}, nil
}

// NewPercentage is the checked form of Percentage
func NewPercentage(pct int) (Constraint, error) {
	if pct < 0 || pct > 100 {
		return Constraint{}, fmt.Errorf("%w: percentage %d outside [0,100]", ErrInvalidConstraint, pct)
	}
	return Constraint{kind: kindPercentage, a: pct}, nil
}

// NewRatio is the checked form of Ratio
func NewRatio(num, den int) (Constraint, error) {
	if den <= 0 {
		return Constraint{}, fmt.Errorf("%w: ratio %d/%d has non-positive denominator", ErrInvalidConstraint, num, den)
	}
	if num < 0 {
		return Constraint{}, fmt.Errorf("%w: ratio %d/%d has negative numerator", ErrInvalidConstraint, num, den)
	}
	return Constraint{kind: kindRatio, a: num, b: den}, nil
}

// NewFill is the checked form of Fill
func NewFill(weight int) (Constraint, error) {
	if weight < 0 {
		return Constraint{}, fmt.Errorf("%w: fill weight %d is negative", ErrInvalidConstraint, weight)
	}
	return Constraint{kind: kindFill, a: weight}, nil
}

func must(c Constraint, err error) Constraint {
	if err != nil {
		panic(err)
	}
	return c
}

// exact reports whether the constraint resolves to a single length
func (c Constraint) exact() bool {
	return c.kind == kindFixed || c.kind == kindPercentage || c.kind == kindRatio
}

// resolve returns the provisional length against a source axis of total cells
func (c Constraint) resolve(total int) int {
	switch c.kind {
	case kindFixed, kindMin, kindMax:
		return c.a
	case kindPercentage:
		return (c.a*total + 50) / 100
	case kindRatio:
		return c.a * total / c.b
	default:
		return 0
	}
}

func (c Constraint) String() string {
	switch c.kind {
	case kindFixed:
		return fmt.Sprintf("Fixed(%d)", c.a)
	case kindMin:
		return fmt.Sprintf("Min(%d)", c.a)
	case kindMax:
		return fmt.Sprintf("Max(%d)", c.a)
	case kindPercentage:
		return fmt.Sprintf("Percentage(%d)", c.a)
	case kindRatio:
		return fmt.Sprintf("Ratio(%d, %d)", c.a, c.b)
	case kindFill:
		return fmt.Sprintf("Fill(%d)", c.a)
	}
	return "Constraint(?)"
}

// Fixeds builds one Fixed constraint per length
func Fixeds(ns ...int) []Constraint {
	cs := make([]Constraint, len(ns))
	for i, n := range ns {
		cs[i] = Fixed(n)
	}
	return cs
}

// Fills builds one Fill constraint per weight
func Fills(weights ...int) []Constraint {
	cs := make([]Constraint, len(weights))
	for i, w := range weights {
		cs[i] = Fill(w)
	}
	return cs
}
