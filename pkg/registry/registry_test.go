package registry

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register("b", func(w io.Writer) { fmt.Fprint(w, "first") })
	reg.Register("a", func(w io.Writer) { fmt.Fprint(w, "a") })
	reg.Register("b", func(w io.Writer) { fmt.Fprint(w, "second") })

	assert.Equal(t, []string{"b", "a"}, reg.IDs())

	fn, err := reg.Lookup("b")
	require.NoError(t, err)
	var buf bytes.Buffer
	fn(&buf)
	assert.Equal(t, "second", buf.String(), "later registration overwrites")

	_, err = reg.Lookup("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "lesson procedure not found: missing")
}
