// Package solutions holds one solver pair per puzzle day.
//
// Each day lives in its own file and registers itself from init, so the
// default registry is an explicit day-to-solver table populated at
// startup. Days are independent: they share no state and no calling
// convention beyond "lines in, answer out".
package solutions

import (
	"fmt"
	"sort"
)

// Solver transforms puzzle input lines into an answer.
type Solver func(lines []string) (any, error)

// Solution is the solver pair for one puzzle day. Either part may be
// nil when it is not implemented.
type Solution struct {
	Part1 Solver
	Part2 Solver
}

// Registry maps day numbers to solutions.
type Registry struct {
	days map[int]Solution
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int]Solution)}
}

// Add registers a solution. It panics on a duplicate day, which is a
// programming error in a day file.
func (r *Registry) Add(day int, sol Solution) {
	if _, ok := r.days[day]; ok {
		panic(fmt.Sprintf("duplicate solution registered for day %d", day))
	}
	r.days[day] = sol
}

// Lookup returns the solution for day.
func (r *Registry) Lookup(day int) (Solution, bool) {
	sol, ok := r.days[day]
	return sol, ok
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.days))
	for day := range r.days {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

var defaultRegistry = NewRegistry()

// Default returns the registry populated by the per-day init functions.
func Default() *Registry {
	return defaultRegistry
}

func register(day int, sol Solution) {
	defaultRegistry.Add(day, sol)
}
