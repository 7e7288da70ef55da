package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(15, Solution{Part1: day15Part1})
}

// Day 15: memory game. Starting numbers are comma-separated on the
// first line. Each turn the next number is 0 if the previous number was
// new, otherwise the gap between its two most recent turns. The answer
// is the 2020th number spoken.

func day15Part1(lines []string) (any, error) {
	return playMemoryGame(lines, 2020)
}

func playMemoryGame(lines []string, turns int) (int, error) {
	if len(lines) == 0 {
		return 0, fmt.Errorf("missing starting numbers")
	}
	fields := strings.Split(strings.TrimSpace(lines[0]), ",")
	start := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return 0, fmt.Errorf("bad starting number %q: %w", f, err)
		}
		start[i] = n
	}
	if turns <= len(start) {
		return start[turns-1], nil
	}

	// lastSpoken maps a number to the turn it was last spoken on.
	// The memo is local to this call; nothing leaks between runs.
	lastSpoken := make(map[int]int, turns)
	for i, n := range start[:len(start)-1] {
		lastSpoken[n] = i + 1
	}

	last := start[len(start)-1]
	for turn := len(start); turn < turns; turn++ {
		next := 0
		if prev, ok := lastSpoken[last]; ok {
			next = turn - prev
		}
		lastSpoken[last] = turn
		last = next
	}
	return last, nil
}
