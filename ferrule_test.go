package ferrule_test

import (
	"io"
	"testing"

	"github.com/aretw0/ferrule"
	"github.com/aretw0/ferrule/pkg/domain"
	"github.com/aretw0/ferrule/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(plan []domain.Lesson) []string {
	out := make([]string, len(plan))
	for i, l := range plan {
		out[i] = l.ID
	}
	return out
}

func TestGuide_Plan(t *testing.T) {
	g, err := ferrule.New()
	require.NoError(t, err)

	all, err := g.Plan()
	require.NoError(t, err)
	require.Len(t, all, 16)
	for i, l := range all {
		assert.Equal(t, i+1, l.Number)
		assert.NotNil(t, l.Run, "lesson %s is unbound", l.ID)
		assert.NotEmpty(t, l.Notes)
	}
	assert.Equal(t, "collections.data-structures", all[15].ID)

	some, err := g.Plan("enums.matching", "basics.loops", "enums.matching")
	require.NoError(t, err)
	assert.Equal(t, []string{"basics.loops", "enums.matching"}, ids(some))
	assert.Equal(t, domain.PhaseCustomTypes, some[1].Phase)

	_, err = g.Plan("basics.loops", "nope")
	assert.ErrorIs(t, err, ferrule.ErrUnknownLesson)
}

func TestGuide_From(t *testing.T) {
	g, err := ferrule.New()
	require.NoError(t, err)

	tail, err := g.From("result.type")
	require.NoError(t, err)
	assert.Equal(t, []string{"result.type", "iterators.combinators", "collections.data-structures"}, ids(tail))

	_, err = g.From("missing")
	assert.ErrorIs(t, err, ferrule.ErrUnknownLesson)
}

func TestGuide_Unbound(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("basics.variables", func(io.Writer) {})

	g, err := ferrule.New(ferrule.WithRegistry(reg))
	require.NoError(t, err)

	plan, err := g.Plan("basics.variables")
	require.NoError(t, err)
	assert.Len(t, plan, 1)

	_, err = g.Plan()
	assert.ErrorIs(t, err, ferrule.ErrUnboundLesson)
}

func TestGuide_Entry(t *testing.T) {
	g, err := ferrule.New()
	require.NoError(t, err)

	e, err := g.Entry("option.type")
	require.NoError(t, err)
	assert.Equal(t, 13, e.Number)
	assert.Len(t, g.Entries(), 16)

	_, err = g.Entry("x")
	assert.ErrorIs(t, err, ferrule.ErrUnknownLesson)
}

func TestVersion(t *testing.T) {
	assert.Regexp(t, `^v\d+\.\d+\.\d+`, ferrule.Version)
}
