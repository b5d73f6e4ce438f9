package answerset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/asp/term"
)

func TestNew(t *testing.T) {
	preds := []term.Predicate{
		term.New("edge", term.New("a"), term.New("b")),
		term.New("node", term.New("a")),
		term.New("node", term.New("b")),
	}
	s := New(preds, 2)

	assert.Equal(t, 2, s.Number())
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())

	got := s.Predicates()
	require.Len(t, got, 3)
	assert.Equal(t, "edge", got[0].Name())
	assert.Equal(t, "node", got[1].Name())
	assert.Equal(t, "node", got[2].Name())
}

func TestNewEmpty(t *testing.T) {
	s := New(nil, 0)

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Predicates())
	assert.Equal(t, "", s.String())
}

func TestImmutability(t *testing.T) {
	preds := []term.Predicate{term.New("a"), term.New("b")}
	s := New(preds, 0)

	preds[0] = term.New("z")
	assert.Equal(t, "a", s.Predicates()[0].Name())

	got := s.Predicates()
	got[1] = term.New("z")
	assert.Equal(t, "b", s.Predicates()[1].Name())
}

func TestContains(t *testing.T) {
	s := New([]term.Predicate{
		term.New("edge", term.New("a"), term.New("b")),
		term.New("node", term.New("a")),
	}, 0)

	assert.True(t, s.Contains(term.New("edge", term.New("a"), term.New("b"))))
	assert.False(t, s.Contains(term.New("edge", term.New("b"), term.New("a"))))
	assert.False(t, s.Contains(term.New("a")))
}

func TestEqual(t *testing.T) {
	a := New([]term.Predicate{term.New("x"), term.New("y")}, 1)
	b := New([]term.Predicate{term.New("x"), term.New("y")}, 9)
	c := New([]term.Predicate{term.New("y"), term.New("x")}, 1)
	d := New([]term.Predicate{term.New("x")}, 1)

	// The answer number is not part of equality; order of predicates is.
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestString(t *testing.T) {
	s := New([]term.Predicate{
		term.New("edge", term.New("a"), term.New("b")),
		term.New("foo bar"),
	}, 0)

	assert.Equal(t, `edge(a,b) "foo bar"`, s.String())
}
