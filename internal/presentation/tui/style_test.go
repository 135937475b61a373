package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/ferrule/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorator_PlainOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	d := NewDecorator(&buf)

	for _, part := range []runner.Part{runner.PartHeader, runner.PartBanner, runner.PartFooter} {
		assert.Equal(t, "text", d(part, "text"))
	}
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, 80, Width(&buf, 80))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.2.3")

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "no escapes on a non-terminal")
	assert.True(t, strings.HasSuffix(out, "v1.2.3\n\n"))
}

func TestRenderer(t *testing.T) {
	render, err := NewRenderer(60)
	require.NoError(t, err)

	out, err := render("# Lesson 7\n\n- one\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Lesson 7")
	assert.Contains(t, out, "one")
}
