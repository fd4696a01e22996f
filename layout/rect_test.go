package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRectClampsNegative(t *testing.T) {
	r := NewRect(1, 2, -3, -4)
	assert.Equal(t, 0, r.Width)
	assert.Equal(t, 0, r.Height)
	assert.True(t, r.IsEmpty())
}

func TestRectEdgesAndContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	assert.Equal(t, 6, r.Right())
	assert.Equal(t, 8, r.Bottom())
	assert.Equal(t, 20, r.Area())
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 7))
	assert.False(t, r.Contains(6, 7))
	assert.False(t, r.Contains(5, 8))
}

func TestRectIntersectUnion(t *testing.T) {
	a := NewRect(0, 0, 5, 5)
	b := NewRect(3, 3, 5, 5)
	assert.Equal(t, NewRect(3, 3, 2, 2), a.Intersect(b))
	assert.Equal(t, NewRect(0, 0, 8, 8), a.Union(b))
	assert.True(t, a.Intersects(b))

	c := NewRect(10, 10, 2, 2)
	assert.True(t, a.Intersect(c).IsEmpty())
	assert.False(t, a.Intersects(c))
	assert.Equal(t, a, a.Union(Rect{}))
}

func TestRectInner(t *testing.T) {
	assert.Equal(t, NewRect(2, 1, 6, 3), NewRect(0, 0, 10, 5).Inner(Margin{Horizontal: 2, Vertical: 1}))
	assert.True(t, NewRect(0, 0, 3, 3).Inner(Uniform(2)).IsEmpty())
}

func TestRectCenteredAndRows(t *testing.T) {
	assert.Equal(t, NewRect(3, 2, 4, 2), NewRect(0, 0, 10, 6).Centered(4, 2))
	assert.Equal(t, NewRect(0, 0, 10, 6), NewRect(0, 0, 10, 6).Centered(40, 20))

	rows := NewRect(1, 1, 3, 3).Rows()
	assert.Len(t, rows, 3)
	assert.Equal(t, NewRect(1, 3, 3, 1), rows[2])
	assert.Len(t, NewRect(0, 0, 4, 1).Columns(), 4)
}

func TestRectLiteralWithNegativeSize(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: -4, Height: -1}

	assert.NotPanics(t, func() {
		assert.Empty(t, r.Rows())
		assert.Empty(t, r.Columns())
	})
	c := r.Centered(3, 3)
	assert.Equal(t, 0, c.Width)
	assert.Equal(t, 0, c.Height)
}
