package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, false)

	c.Log(" [%s]: %s", c.Colorize(0, "magenta"), "2+2?")
	c.Error("Falta el parámetro id.")

	assert.Equal(t, " [0]: 2+2?\nError: Falta el parámetro id.\n", buf.String())
}

func TestColorizeWrapsKnownColors(t *testing.T) {
	c := New(&bytes.Buffer{}, true)

	red := c.Colorize("x", "red")
	assert.Contains(t, red, "\x1b[31m")
	assert.Contains(t, red, "x")
	assert.Equal(t, "x", c.Colorize("x", "no-such-color"))
}

func TestBigFramesText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Big("correcto", "green")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "|  C O R R E C T O  |", lines[2])
	assert.Equal(t, len(lines[0]), len(lines[2]))
}
