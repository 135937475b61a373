package catalog

import (
	"testing"

	"github.com/aretw0/ferrule/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 16, c.Len())

	entries := c.Entries()
	for i, e := range entries {
		assert.Equal(t, i+1, e.Number, "lesson %s is out of order", e.ID)
		assert.NotEmpty(t, e.Concepts, "lesson %s has no concepts", e.ID)
	}

	first := entries[0]
	assert.Equal(t, "basics.variables", first.ID)
	assert.Equal(t, "Variables & Mutability", first.Title)

	own, err := c.Get("ownership.deep-dive")
	require.NoError(t, err)
	assert.Contains(t, own.Table, "Ownership moves")
}

func TestGet_Unknown(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	_, err = c.Get("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownLesson)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown key",
			doc: `lessons:
  - id: a
    number: 1
    title: A
    colour: red`,
			want: "colour",
		},
		{
			name: "missing id",
			doc: `lessons:
  - number: 1
    title: A`,
			want: "entry 0 has no id",
		},
		{
			name: "missing title",
			doc: `lessons:
  - id: a
    number: 1`,
			want: `lesson "a" has no title`,
		},
		{
			name: "duplicate id",
			doc: `lessons:
  - {id: a, number: 1, title: A}
  - {id: a, number: 2, title: B}`,
			want: `duplicate lesson id "a"`,
		},
		{
			name: "duplicate number",
			doc: `lessons:
  - {id: a, number: 1, title: A}
  - {id: b, number: 1, title: B}`,
			want: "share number 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Parse([]byte("lessons: [unclosed"))
	assert.Error(t, err)
}

func TestEntry_Markdown(t *testing.T) {
	e := Entry{
		Number:   7,
		Title:    "Borrowing Basics",
		Summary:  "Many readers or one writer.",
		Concepts: []string{"one", "two"},
		Table:    "| a | b |\n|---|---|\n",
	}

	want := "# Lesson 7: Borrowing Basics\n\n" +
		"Many readers or one writer.\n\n" +
		"## Key Concepts\n\n- one\n- two\n\n" +
		"| a | b |\n|---|---|\n"
	assert.Equal(t, want, e.Markdown())

	l := e.Lesson(nil)
	assert.Equal(t, want, l.Notes)
	assert.Equal(t, domain.Phase(""), l.Phase)
}
