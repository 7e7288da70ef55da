package solutions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleFuel(t *testing.T) {
	tests := []struct {
		mass int
		want int
	}{
		{12, 2},
		{14, 2},
		{1969, 654},
		{100756, 33583},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, moduleFuel(tt.mass), "mass %d", tt.mass)
	}
}

func TestDay1Part1SumsPerModuleFuel(t *testing.T) {
	got, err := day1Part1([]string{"12", "14", "1969", "100756"})
	require.NoError(t, err)
	assert.Equal(t, 2+2+654+33583, got)
}

func TestDay1Part1SkipsBlankLines(t *testing.T) {
	got, err := day1Part1([]string{"12", "", "14"})
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestDay1Part2RecursiveFuel(t *testing.T) {
	tests := []struct {
		mass string
		want int
	}{
		{"14", 2},
		{"1969", 966},
		{"100756", 50346},
	}
	for _, tt := range tests {
		got, err := day1Part2([]string{tt.mass})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "mass %s", tt.mass)
	}
}

func TestDay1Part2NeverCountsNonPositiveIncrement(t *testing.T) {
	// fuel(2) = -2; fuel(6) = 0. Neither contributes.
	got, err := day1Part2([]string{"2"})
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = day1Part2([]string{"6"})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestDay1RejectsNonNumericMass(t *testing.T) {
	_, err := day1Part1([]string{"twelve"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad mass")

	_, err = day1Part2([]string{"twelve"})
	require.Error(t, err)
}
