package solutions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orbitSample = []string{
	"COM)B", "B)C", "C)D", "D)E", "E)F", "B)G",
	"G)H", "D)I", "E)J", "J)K", "K)L",
}

func TestDay6Part1CountsDirectAndIndirectOrbits(t *testing.T) {
	got, err := day6Part1(orbitSample)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestDay6Part2CountsOrbitalTransfers(t *testing.T) {
	lines := append(append([]string{}, orbitSample...), "K)YOU", "I)SAN")
	got, err := day6Part2(lines)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestDay6Part2RequiresYouAndSan(t *testing.T) {
	_, err := day6Part2(orbitSample)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YOU")
}

func TestDay6RejectsMalformedOrbit(t *testing.T) {
	_, err := day6Part1([]string{"COM-B"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad orbit")
}
