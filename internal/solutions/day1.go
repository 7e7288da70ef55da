package solutions

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

func init() {
	register(1, Solution{Part1: day1Part1, Part2: day1Part2})
}

// Day 1: total fuel for the module masses, one mass per line.

func day1Part1(lines []string) (any, error) {
	sum := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		slog.Debug("calculating the fuel for mass", "mass", line)
		mass, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("bad mass %q: %w", line, err)
		}
		sum += moduleFuel(mass)
	}
	return sum, nil
}

// day1Part2 re-applies the fuel formula to each fuel increment until it
// goes non-positive; the final increment is never counted.
func day1Part2(lines []string) (any, error) {
	sum := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		mass, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("bad mass %q: %w", line, err)
		}
		for {
			mass = moduleFuel(mass)
			if mass <= 0 {
				break
			}
			sum += mass
		}
	}
	return sum, nil
}

func moduleFuel(mass int) int {
	return mass/3 - 2
}
