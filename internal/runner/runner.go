// Package runner dispatches puzzle days to their solvers, times each
// part, and compares results against a fixture's expected value.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/advent/internal/input"
	"github.com/roach88/advent/internal/solutions"
)

// Loader resolves the puzzle data for a day.
type Loader interface {
	Load(day int) (*input.PuzzleData, error)
}

// Runner executes puzzle solutions.
type Runner struct {
	loader   Loader
	registry *solutions.Registry
	out      io.Writer
	printer  *message.Printer

	// now and tokens are overridable for deterministic tests. If nil,
	// New fills in time.Now and UUIDv7Generator.
	now    func() time.Time
	tokens TokenGenerator
}

// New creates a runner writing result lines to out.
func New(loader Loader, registry *solutions.Registry, out io.Writer) *Runner {
	return &Runner{
		loader:   loader,
		registry: registry,
		out:      out,
		printer:  message.NewPrinter(language.English),
		now:      time.Now,
		tokens:   UUIDv7Generator{},
	}
}

// RunDay executes the solution for one day. part restricts execution to
// a single part; 0 runs whichever parts exist. A part that is not
// implemented is skipped silently.
func (r *Runner) RunDay(day, part int) error {
	slog.Debug("starting puzzle execution", "day", day, "run", r.tokens.Generate())

	sol, ok := r.registry.Lookup(day)
	if !ok {
		return &UnknownDayError{Day: day}
	}

	slog.Info("executing puzzle", "day", day)
	if part != 0 {
		slog.Debug("only executing a single part", "part", part)
	}

	data, err := r.loader.Load(day)
	if err != nil {
		return err
	}
	lines, err := data.Lines()
	if err != nil {
		return err
	}
	expected, hasExpected, err := data.ExpectedResult()
	if err != nil {
		return err
	}

	if (part == 0 || part == 1) && sol.Part1 != nil {
		if err := r.runPart(day, 1, sol.Part1, lines, expected, hasExpected); err != nil {
			return err
		}
	}
	if (part == 0 || part == 2) && sol.Part2 != nil {
		if err := r.runPart(day, 2, sol.Part2, lines, expected, hasExpected); err != nil {
			return err
		}
	}
	return nil
}

// RunAll executes every registered day in ascending order.
func (r *Runner) RunAll(part int) error {
	for _, day := range r.registry.Days() {
		if err := r.RunDay(day, part); err != nil {
			return err
		}
	}
	return nil
}

// List writes the available days to w.
func (r *Runner) List(w io.Writer) {
	for _, day := range r.registry.Days() {
		fmt.Fprintf(w, "Available day: %d\n", day)
	}
}

func (r *Runner) runPart(day, part int, solve solutions.Solver, lines []string, expected string, hasExpected bool) error {
	start := r.now()
	result, err := solve(lines)
	if err != nil {
		return fmt.Errorf("day %d part %d: %w", day, part, err)
	}
	elapsed := r.now().Sub(start)

	comparison := ""
	if hasExpected {
		if expected == fmt.Sprint(result) {
			comparison = " ✔️"
		} else {
			comparison = fmt.Sprintf(" ❌ (%s expected)", expected)
		}
	}

	// The milliseconds are digit-grouped; the result is not, so the
	// answer can be pasted into the puzzle site as is.
	ms := r.printer.Sprintf("%d", elapsed.Milliseconds())
	fmt.Fprintf(r.out, "Day %d part %d: %v (in %s ms)%s\n", day, part, result, ms, comparison)
	return nil
}
