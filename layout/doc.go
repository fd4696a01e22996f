// Package layout partitions rectangles along one axis according to an ordered
// list of sizing constraints.
//
// Partitioning is pure and deterministic: the same source, direction,
// constraints, spacing and flex policy always produce the same rectangles.
// Over-constrained input never fails; segments shrink in a fixed order
// (Fill, Max, Min, then exact requests) until the result fits.
package layout
