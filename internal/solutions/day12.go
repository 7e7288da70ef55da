package solutions

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

func init() {
	register(12, Solution{Part1: day12Part1})
}

// Day 12: ship navigation. Each line is an action letter and a
// magnitude: N/S/E/W translate, L/R rotate the heading in multiples of
// 90 degrees, F moves along the current heading. The answer is the
// Manhattan distance from the origin.

type heading int

// Clockwise order, so rotating right steps forward through the values.
const (
	north heading = iota
	east
	south
	west
)

type ship struct {
	x, y int
	dir  heading
}

func (s *ship) move(action byte, dist int) error {
	slog.Debug("moving ship", "x", s.x, "y", s.y, "action", string(action), "dist", dist)
	switch action {
	case 'N':
		s.y += dist
	case 'S':
		s.y -= dist
	case 'E':
		s.x += dist
	case 'W':
		s.x -= dist
	case 'L', 'R':
		if dist%90 != 0 {
			return fmt.Errorf("rotation %d is not a multiple of 90", dist)
		}
		steps := dist / 90 % 4
		if action == 'L' {
			steps = 4 - steps
		}
		s.dir = heading((int(s.dir) + steps) % 4)
	case 'F':
		switch s.dir {
		case north:
			s.y += dist
		case south:
			s.y -= dist
		case east:
			s.x += dist
		case west:
			s.x -= dist
		}
	default:
		return fmt.Errorf("unknown action %q", string(action))
	}
	return nil
}

func day12Part1(lines []string) (any, error) {
	s := ship{dir: east}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		dist, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, fmt.Errorf("bad action %q: %w", line, err)
		}
		if err := s.move(line[0], dist); err != nil {
			return nil, err
		}
	}
	return abs(s.x) + abs(s.y), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
