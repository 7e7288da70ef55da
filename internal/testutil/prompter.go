package testutil

// ScriptedPrompter returns canned fixture content instead of blocking
// on console input.
//
// Implements input.Prompter.
type ScriptedPrompter struct {
	Lines    []string
	Expected string
	Err      error

	// Calls counts ReadFixture invocations, so tests can assert the
	// prompter was (or was not) consulted.
	Calls int
}

// ReadFixture returns the scripted content.
func (p *ScriptedPrompter) ReadFixture(n int) ([]string, string, error) {
	p.Calls++
	if p.Err != nil {
		return nil, "", p.Err
	}
	return p.Lines, p.Expected, nil
}
