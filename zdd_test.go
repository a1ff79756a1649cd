package xcover_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dancecells/xcover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// K_n perfect matching count follows (n-1)!! for even n.
func doubleFactorial(n int) uint64 {
	var result uint64 = 1
	for i := n; i > 1; i -= 2 {
		result *= uint64(i)
	}
	return result
}

func completeGraphOptions(n int) [][]string {
	var options [][]string
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			options = append(options, []string{
				fmt.Sprintf("v%d", i),
				fmt.Sprintf("v%d", j),
			})
		}
	}
	return options
}

func TestCoversZDDMatchesCoversOnK8(t *testing.T) {
	const n = 8
	options := completeGraphOptions(n)

	solutions, err := xcover.Covers(context.Background(), options)
	require.NoError(t, err)
	viaCovers := 0
	for range solutions {
		viaCovers++
	}

	zdd, err := xcover.CoversZDD(context.Background(), options,
		xcover.WithMemo(true), xcover.WithHeuristic(xcover.Leftmost))
	require.NoError(t, err)
	viaZDD := xcover.CountSolutions(zdd)

	expected := doubleFactorial(n - 1)
	assert.EqualValues(t, expected, viaCovers)
	assert.EqualValues(t, expected, viaZDD)
}

func TestCoversZDDK16PerfectMatchingCount(t *testing.T) {
	const n = 16
	options := completeGraphOptions(n)

	zdd, err := xcover.CoversZDD(context.Background(), options,
		xcover.WithMemo(true), xcover.WithHeuristic(xcover.Leftmost))
	require.NoError(t, err)

	assert.EqualValues(t, 2027025, xcover.CountSolutions(zdd))
}

func TestCoversZDDWithoutMemoMatches(t *testing.T) {
	const n = 6
	options := completeGraphOptions(n)

	zdd, err := xcover.CoversZDD(context.Background(), options, xcover.WithMemo(false))
	require.NoError(t, err)

	assert.EqualValues(t, doubleFactorial(n-1), xcover.CountSolutions(zdd))
}

func TestCoversZDDExportTo(t *testing.T) {
	options := [][]string{
		{"c", "e"},
		{"a", "d", "g"},
		{"b", "c", "f"},
		{"a", "d", "f"},
		{"b", "g"},
		{"d", "e", "g"},
	}

	zdd, err := xcover.CoversZDD(context.Background(), options)
	require.NoError(t, err)

	type node struct{ variable int32; lo, hi uint64 }
	var built []node
	root := xcover.ExportTo(zdd, func(variable int32, lo, hi uint64) uint64 {
		built = append(built, node{variable, lo, hi})
		return uint64(len(built) + 1)
	})

	assert.NotZero(t, root)
	assert.NotEmpty(t, built)
}
