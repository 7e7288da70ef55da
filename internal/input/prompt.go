package input

import (
	"bufio"
	"fmt"
	"io"
)

// Prompter supplies fixture content when no cached copy exists.
//
// The console implementation blocks on user input; tests substitute a
// scripted source.
type Prompter interface {
	// ReadFixture collects the input lines (terminated by a blank line
	// or EOF) and the expected result for fixture n.
	ReadFixture(n int) (lines []string, expected string, err error)
}

// TerminalPrompter reads fixture content interactively from a console.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer
}

// ReadFixture implements Prompter.
func (p *TerminalPrompter) ReadFixture(n int) ([]string, string, error) {
	fmt.Fprintf(p.Out, "Please enter the input for test %d; end with an empty line\n", n)

	sc := bufio.NewScanner(p.In)
	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, "", err
	}

	fmt.Fprint(p.Out, "Expected result: ")
	var expected string
	if sc.Scan() {
		expected = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return nil, "", err
	}
	return lines, expected, nil
}
