package input

import (
	"fmt"
	"os"
	"strings"
)

// resultPrefix is the literal header prefix of a fixture file.
const resultPrefix = "Result: "

// PuzzleData is a handle to a cached puzzle input file.
//
// It is constructed per invocation and discarded after use; the file on
// disk is the durable copy.
type PuzzleData struct {
	path      string
	isFixture bool
}

// NewPuzzleData wraps the cache file at path. isFixture marks files
// carrying the two-line fixture header.
func NewPuzzleData(path string, isFixture bool) *PuzzleData {
	return &PuzzleData{path: path, isFixture: isFixture}
}

// Path returns the backing file path.
func (d *PuzzleData) Path() string {
	return d.path
}

// Lines returns the puzzle input lines. For fixtures the two header
// lines (Result and Input) are stripped.
func (d *PuzzleData) Lines() ([]string, error) {
	raw, err := os.ReadFile(d.path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if d.isFixture {
		if len(lines) < 2 {
			return nil, &LoadError{
				Code:    CodeBadFixtureHeader,
				Message: "fixture is missing its header lines",
				Path:    d.path,
			}
		}
		lines = lines[2:]
	}
	return lines, nil
}

// ExpectedResult returns the expected answer recorded in a fixture
// header. ok is false for real puzzle input, which carries none.
func (d *PuzzleData) ExpectedResult() (value string, ok bool, err error) {
	if !d.isFixture {
		return "", false, nil
	}
	raw, err := os.ReadFile(d.path)
	if err != nil {
		return "", false, err
	}
	first, _, _ := strings.Cut(string(raw), "\n")
	first = strings.TrimSpace(first)
	if !strings.HasPrefix(first, resultPrefix) {
		return "", false, &LoadError{
			Code:    CodeBadFixtureHeader,
			Message: fmt.Sprintf("fixture must start with %q", resultPrefix),
			Path:    d.path,
		}
	}
	return strings.TrimPrefix(first, resultPrefix), true, nil
}
