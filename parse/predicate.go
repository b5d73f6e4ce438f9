package parse

import (
	"github.com/zero-day-ai/asp"
	"github.com/zero-day-ai/asp/term"
)

// parser carries request-scoped diagnostic state through a single parse
// invocation. The line counter exists only for error messages; it lives
// here rather than in package state so concurrent parses of independent
// captures never interfere.
type parser struct {
	line int
}

// ParsePredicate recursively parses a single ground term into a predicate
// tree.
//
// The term's name ends at the first unescaped, unquoted opening paren; a
// term without one is a leaf of arity zero. Otherwise the term must end
// with a closing paren, and its argument block is split on top-level
// commas into child terms, parsed recursively in order.
//
// An empty argument block, as in name(), is not special-cased: it parses
// as one child built from the empty string, yielding a child with an empty
// name. Callers should avoid emitting empty argument lists.
//
// Example:
//
//	p, err := parse.ParsePredicate("edge(a,cost(2))")
//	// p.Name() == "edge", p.Arity() == 2
func ParsePredicate(text string) (term.Predicate, error) {
	p := parser{}
	return p.predicate(text)
}

func (p *parser) predicate(text string) (term.Predicate, error) {
	const op = "parse.ParsePredicate"
	rawName, rest, found, err := scanAt(text, '(', true, false, p.line)
	if err != nil {
		return term.Predicate{}, err
	}
	name, err := decodeNameAt(rawName, p.line)
	if err != nil {
		return term.Predicate{}, err
	}
	if !found {
		return term.New(name), nil
	}
	if rest == "" || rest[len(rest)-1] != ')' {
		return term.Predicate{}, asp.NewMalformedPredicateError(op, p.line, text)
	}
	children, err := p.children(rest[:len(rest)-1])
	if err != nil {
		return term.Predicate{}, err
	}
	return term.New(name, children...), nil
}

// children parses an argument block (with its trailing paren already
// stripped) into an ordered child list. Commas inside nested argument
// lists or quoted strings are not split points.
func (p *parser) children(text string) ([]term.Predicate, error) {
	first, rest, found, err := scanAt(text, ',', true, true, p.line)
	if err != nil {
		return nil, err
	}
	child, err := p.predicate(first)
	if err != nil {
		return nil, err
	}
	if !found {
		return []term.Predicate{child}, nil
	}
	more, err := p.children(rest)
	if err != nil {
		return nil, err
	}
	return append([]term.Predicate{child}, more...), nil
}
