package solutions

import (
	"fmt"
	"strings"
)

func init() {
	register(6, Solution{Part1: day6Part1, Part2: day6Part2})
}

// Day 6: orbit map, one "A)B" pair per line meaning B orbits A.

func day6Part1(lines []string) (any, error) {
	parents, err := parseOrbits(lines)
	if err != nil {
		return nil, err
	}
	depths := make(map[string]int, len(parents))
	total := 0
	for node := range parents {
		total += orbitDepth(parents, depths, node)
	}
	return total, nil
}

// day6Part2 counts the minimal orbital transfers between the objects
// YOU and SAN orbit, via their deepest common parent.
func day6Part2(lines []string) (any, error) {
	parents, err := parseOrbits(lines)
	if err != nil {
		return nil, err
	}
	for _, node := range []string{"YOU", "SAN"} {
		if _, ok := parents[node]; !ok {
			return nil, fmt.Errorf("orbit map has no %s entry", node)
		}
	}

	// Distance from YOU's parent to each of its ancestors.
	fromYou := make(map[string]int)
	for node, d := parents["YOU"], 0; node != ""; node, d = parents[node], d+1 {
		fromYou[node] = d
	}
	for node, d := parents["SAN"], 0; node != ""; node, d = parents[node], d+1 {
		if up, ok := fromYou[node]; ok {
			return up + d, nil
		}
	}
	return nil, fmt.Errorf("YOU and SAN share no common parent")
}

func parseOrbits(lines []string) (map[string]string, error) {
	parents := make(map[string]string, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		center, satellite, ok := strings.Cut(line, ")")
		if !ok {
			return nil, fmt.Errorf("bad orbit %q", line)
		}
		parents[satellite] = center
	}
	return parents, nil
}

func orbitDepth(parents map[string]string, depths map[string]int, node string) int {
	parent, ok := parents[node]
	if !ok {
		return 0 // the map root orbits nothing
	}
	if d, ok := depths[node]; ok {
		return d
	}
	d := 1 + orbitDepth(parents, depths, parent)
	depths[node] = d
	return d
}
