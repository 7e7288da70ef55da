package runner

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/advent/internal/input"
	"github.com/roach88/advent/internal/solutions"
)

// TestRunAllGoldenOutput locks down the exact output format: one line
// per executed part, grouped milliseconds, checkmark or mismatch note.
//
// To regenerate the golden file, run:
//
//	go test ./internal/runner -update
func TestRunAllGoldenOutput(t *testing.T) {
	reg := solutions.NewRegistry()
	reg.Add(3, solutions.Solution{
		Part1: constSolver(42),
		Part2: constSolver(41),
	})
	reg.Add(7, solutions.Solution{
		Part1: constSolver(1005),
	})

	loader := &fakeLoader{data: map[int]*input.PuzzleData{
		3: fixtureData(t, "42", "x"),
		7: realData(t, "x"),
	}}
	out := &bytes.Buffer{}
	r := newTestRunner(loader, reg, out)

	if err := r.RunAll(0); err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "run_all_output", out.Bytes())
}
