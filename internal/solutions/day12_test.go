package solutions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay12SampleRoute(t *testing.T) {
	got, err := day12Part1([]string{"F10", "N3", "F7", "R90", "F11"})
	require.NoError(t, err)
	assert.Equal(t, 25, got)
}

func TestDay12RotationsCancelOut(t *testing.T) {
	// A full turn in either direction leaves the heading east.
	got, err := day12Part1([]string{"R360", "L360", "F5"})
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestDay12LeftAndRightAreInverse(t *testing.T) {
	got, err := day12Part1([]string{"L90", "R90", "F3"})
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestDay12CardinalMovesIgnoreHeading(t *testing.T) {
	got, err := day12Part1([]string{"N2", "S2", "E4", "W1"})
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestDay12RejectsBadActions(t *testing.T) {
	_, err := day12Part1([]string{"X5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")

	_, err = day12Part1([]string{"R45"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple of 90")

	_, err = day12Part1([]string{"Ften"})
	require.Error(t, err)
}
