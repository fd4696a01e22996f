package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedConstructorsRejectBadInput(t *testing.T) {
	_, err := NewRatio(1, 0)
	require.ErrorIs(t, err, ErrInvalidConstraint)

	_, err = NewRatio(-1, 3)
	require.ErrorIs(t, err, ErrInvalidConstraint)

	_, err = NewPercentage(101)
	require.ErrorIs(t, err, ErrInvalidConstraint)

	_, err = NewPercentage(-1)
	require.ErrorIs(t, err, ErrInvalidConstraint)

	_, err = NewFill(-2)
	require.ErrorIs(t, err, ErrInvalidConstraint)

	_, err = NewFixed(-1)
	require.ErrorIs(t, err, ErrInvalidConstraint)

	c, err := NewRatio(1, 4)
	require.NoError(t, err)
	assert.Equal(t, Ratio(1, 4), c)
}

func TestLiteralConstructorsPanic(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrInvalidConstraint))
	}()
	_ = Ratio(3, 0)
}

func TestConstraintEquality(t *testing.T) {
	assert.Equal(t, Fill(1), Fill(1))
	assert.NotEqual(t, Fill(1), Min(1))
	assert.True(t, Percentage(50) == Percentage(50))
	assert.Equal(t, "Ratio(1, 4)", Ratio(1, 4).String())
	assert.Equal(t, Fixed(0), Constraint{})
}
