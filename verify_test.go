package xcover_test

import (
	"testing"

	"github.com/dancecells/xcover"
	"github.com/stretchr/testify/assert"
)

func TestVerifyRejectsUncoveredPrimary(t *testing.T) {
	options := [][]string{
		{"a", "b"},
		{"c"},
	}
	err := xcover.Verify([]int{0}, options)
	assert.Error(t, err)
	var verr *xcover.VerifyError
	assert.ErrorAs(t, err, &verr)
}

func TestVerifyRejectsDoublyCoveredPrimary(t *testing.T) {
	options := [][]string{
		{"a"},
		{"a", "b"},
	}
	err := xcover.Verify([]int{0, 1}, options)
	assert.Error(t, err)
}

func TestVerifyAcceptsColoredRepeatedSameColor(t *testing.T) {
	primary := []string{"a", "b"}
	secondary := []string{"x"}
	options := [][]string{
		{"a", "x:R"},
		{"b", "x:R"},
	}
	err := xcover.Verify([]int{0, 1}, options,
		xcover.WithPrimary(primary), xcover.WithSecondary(secondary), xcover.WithColored())
	assert.NoError(t, err)
}

func TestVerifyRejectsConflictingColors(t *testing.T) {
	primary := []string{"a", "b"}
	secondary := []string{"x"}
	options := [][]string{
		{"a", "x:R"},
		{"b", "x:B"},
	}
	err := xcover.Verify([]int{0, 1}, options,
		xcover.WithPrimary(primary), xcover.WithSecondary(secondary), xcover.WithColored())
	assert.Error(t, err)
}

func TestVerifyRejectsOutOfRangeOption(t *testing.T) {
	options := [][]string{{"a"}}
	err := xcover.Verify([]int{5}, options)
	assert.Error(t, err)
}

func TestVerifyBool(t *testing.T) {
	matrix := [][]bool{
		{true, false},
		{false, true},
	}
	assert.NoError(t, xcover.VerifyBool([]int{0, 1}, matrix))
	assert.Error(t, xcover.VerifyBool([]int{0}, matrix))
}
