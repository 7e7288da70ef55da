package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPrompterReadsUntilBlankLine(t *testing.T) {
	out := &bytes.Buffer{}
	p := &TerminalPrompter{
		In:  strings.NewReader("a\nb\n\n42\n"),
		Out: out,
	}

	lines, expected, err := p.ReadFixture(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
	assert.Equal(t, "42", expected)
	assert.Contains(t, out.String(), "enter the input for test 1")
	assert.Contains(t, out.String(), "Expected result: ")
}

func TestTerminalPrompterHandlesEOF(t *testing.T) {
	p := &TerminalPrompter{
		In:  strings.NewReader("a\nb"),
		Out: &bytes.Buffer{},
	}

	lines, expected, err := p.ReadFixture(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
	assert.Equal(t, "", expected)
}
