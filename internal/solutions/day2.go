package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(2, Solution{Part1: day2Part1, Part2: day2Part2})
}

// Day 2: intcode program with add (1), multiply (2), and halt (99),
// position-mode operands only.

const day2Target = 19690720

func day2Part1(lines []string) (any, error) {
	program, err := parseProgram(lines)
	if err != nil {
		return nil, err
	}
	if len(program) > 3 {
		// Restore the "1202 program alarm" state.
		program[1] = 12
		program[2] = 2
	}
	if err := runProgram(program); err != nil {
		return nil, err
	}
	return program[0], nil
}

func day2Part2(lines []string) (any, error) {
	program, err := parseProgram(lines)
	if err != nil {
		return nil, err
	}
	for noun := 0; noun <= 99; noun++ {
		for verb := 0; verb <= 99; verb++ {
			memory := make([]int, len(program))
			copy(memory, program)
			memory[1] = noun
			memory[2] = verb
			if err := runProgram(memory); err != nil {
				return nil, err
			}
			if memory[0] == day2Target {
				return 100*noun + verb, nil
			}
		}
	}
	return nil, fmt.Errorf("no noun/verb pair produces %d", day2Target)
}

func parseProgram(lines []string) ([]int, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty intcode program")
	}
	fields := strings.Split(strings.TrimSpace(lines[0]), ",")
	program := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad intcode value %q: %w", f, err)
		}
		program[i] = v
	}
	return program, nil
}

func runProgram(memory []int) error {
	read := func(pos int) (int, error) {
		if pos < 0 || pos >= len(memory) {
			return 0, fmt.Errorf("address %d out of range", pos)
		}
		return memory[pos], nil
	}

	for ip := 0; ; ip += 4 {
		op, err := read(ip)
		if err != nil {
			return err
		}
		if op == 99 {
			return nil
		}
		if op != 1 && op != 2 {
			return fmt.Errorf("unknown opcode %d at position %d", op, ip)
		}
		var args [3]int
		for i := range args {
			addr, err := read(ip + 1 + i)
			if err != nil {
				return err
			}
			args[i] = addr
		}
		a, err := read(args[0])
		if err != nil {
			return err
		}
		b, err := read(args[1])
		if err != nil {
			return err
		}
		if args[2] < 0 || args[2] >= len(memory) {
			return fmt.Errorf("address %d out of range", args[2])
		}
		if op == 1 {
			memory[args[2]] = a + b
		} else {
			memory[args[2]] = a * b
		}
	}
}
