package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/asp"
)

func TestParsePredicateLeaf(t *testing.T) {
	p, err := ParsePredicate("foo")
	require.NoError(t, err)

	assert.Equal(t, "foo", p.Name())
	assert.Equal(t, 0, p.Arity())
	assert.Equal(t, "foo", p.String())
}

func TestParsePredicateChildren(t *testing.T) {
	p, err := ParsePredicate("foo(bar,baz)")
	require.NoError(t, err)

	assert.Equal(t, "foo", p.Name())
	require.Equal(t, 2, p.Arity())
	assert.Equal(t, "bar", p.Child(0).Name())
	assert.Equal(t, "baz", p.Child(1).Name())

	// Rendering the parsed tree recovers the original text.
	assert.Equal(t, "foo(bar,baz)", p.String())
}

func TestParsePredicateNested(t *testing.T) {
	p, err := ParsePredicate("path(edge(a,b),edge(b,c),cost(3))")
	require.NoError(t, err)

	assert.Equal(t, "path", p.Name())
	require.Equal(t, 3, p.Arity())
	assert.Equal(t, "edge", p.Child(0).Name())
	assert.Equal(t, 2, p.Child(0).Arity())
	assert.Equal(t, "cost", p.Child(2).Name())
	assert.Equal(t, "path(edge(a,b),edge(b,c),cost(3))", p.String())
}

func TestParsePredicateQuotedNames(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantName string
		arity    int
	}{
		{name: "quoted space", text: `"foo bar"`, wantName: "foo bar", arity: 0},
		{name: "quoted punctuation", text: `"a(b,c)"`, wantName: "a(b,c)", arity: 0},
		{name: "quoted name with args", text: `"foo bar"(a,b)`, wantName: "foo bar", arity: 2},
		{name: "escaped quote in name", text: `"say \"hi\""`, wantName: `say "hi"`, arity: 0},
		{name: "quoted comma argument", text: `pair("a,b",c)`, wantName: "pair", arity: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePredicate(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.arity, p.Arity())
		})
	}
}

// TestParsePredicateRoundTrip verifies parse(render(p)) == p for names
// that need quoting in rendered form.
func TestParsePredicateRoundTrip(t *testing.T) {
	texts := []string{
		"foo",
		"foo(bar,baz)",
		`"foo bar"`,
		`"a\\b"(c)`,
		`p("x y",q(r),"z\"w")`,
	}
	for _, text := range texts {
		p, err := ParsePredicate(text)
		require.NoError(t, err, text)

		again, err := ParsePredicate(p.String())
		require.NoError(t, err, p.String())
		assert.True(t, p.Equal(again), "round trip of %q via %q", text, p.String())
	}
}

func TestParsePredicateEmptyArgumentList(t *testing.T) {
	// name() is not special-cased: it parses as one child built from the
	// empty string.
	p, err := ParsePredicate("name()")
	require.NoError(t, err)

	require.Equal(t, 1, p.Arity())
	assert.Equal(t, "", p.Child(0).Name())
	assert.Equal(t, "name()", p.String())
}

func TestParsePredicateEmptyTerm(t *testing.T) {
	p, err := ParsePredicate("")
	require.NoError(t, err)
	assert.Equal(t, "", p.Name())
	assert.Equal(t, 0, p.Arity())
}

func TestParsePredicateMissingClosingParen(t *testing.T) {
	_, err := ParsePredicate("foo(bar")
	require.ErrorIs(t, err, asp.ErrMalformedPredicate)

	// The offending term is carried for diagnosis.
	var perr *asp.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "foo(bar", perr.Snippet)
}

func TestParsePredicateBareOpenParen(t *testing.T) {
	_, err := ParsePredicate("foo(")
	assert.ErrorIs(t, err, asp.ErrMalformedPredicate)
}

func TestParsePredicateExtraClosingParen(t *testing.T) {
	_, err := ParsePredicate("foo(bar))")
	assert.ErrorIs(t, err, asp.ErrUnbalancedParens)
}

func TestParsePredicateUnterminatedQuote(t *testing.T) {
	_, err := ParsePredicate(`foo("bar)`)
	assert.ErrorIs(t, err, asp.ErrUnterminatedQuote)
}
