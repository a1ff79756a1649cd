package xcover_test

import (
	"testing"

	"github.com/dancecells/xcover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInfersUniverse(t *testing.T) {
	options := [][]string{
		{"c", "e"},
		{"a", "d", "g"},
	}
	p, err := xcover.Encode(options)
	require.NoError(t, err)
	assert.EqualValues(t, 5, p.NItems)
	assert.EqualValues(t, 5, p.NPrimary)
	assert.EqualValues(t, 0, p.NSecondary)
}

func TestEncodeExplicitSecondary(t *testing.T) {
	primary := []string{"a", "b", "c"}
	secondary := []string{"x", "y"}
	options := [][]string{
		{"a", "x"},
		{"b", "c", "y"},
	}
	p, err := xcover.Encode(options, xcover.WithPrimary(primary), xcover.WithSecondary(secondary))
	require.NoError(t, err)
	assert.EqualValues(t, 3, p.NPrimary)
	assert.EqualValues(t, 2, p.NSecondary)
}

func TestEncodeRejectsUnknownItemWhenBothListsExplicit(t *testing.T) {
	options := [][]string{{"a", "z"}}
	_, err := xcover.Encode(options,
		xcover.WithPrimary([]string{"a"}),
		xcover.WithSecondary([]string{"b"}),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, xcover.ErrUnknownItem)
}

func TestEncodeRejectsEmptyOption(t *testing.T) {
	_, err := xcover.Encode([][]string{{"a"}, {}})
	require.Error(t, err)
	assert.ErrorIs(t, err, xcover.ErrEmptyOption)
}

func TestEncodeRejectsDuplicateItemInOption(t *testing.T) {
	_, err := xcover.Encode([][]string{{"a", "a"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, xcover.ErrDuplicateItem)
}

func TestEncodeRejectsEmptyColor(t *testing.T) {
	_, err := xcover.Encode(
		[][]string{{"a", "x:"}},
		xcover.WithPrimary([]string{"a"}),
		xcover.WithSecondary([]string{"x"}),
		xcover.WithColored(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, xcover.ErrEmptyColor)
}

func TestEncodeNoOptions(t *testing.T) {
	_, err := xcover.Encode(nil)
	assert.ErrorIs(t, err, xcover.ErrNoOptions)
}

func TestEncodeBoolMatrix(t *testing.T) {
	p, err := xcover.EncodeBoolMatrix([][]bool{
		{true, false, true},
		{false, true, false},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, p.NItems)
	assert.EqualValues(t, 3, p.NPrimary)
	assert.Equal(t, []int32{0, 2, 1}, p.NodeItem)
}
