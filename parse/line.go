package parse

import (
	"github.com/zero-day-ai/asp/answerset"
	"github.com/zero-day-ai/asp/term"
)

// Line parses a single answer line into an indexed answer set tagged with
// the given solver answer number. An empty line yields an empty set.
//
// The line is split on unquoted spaces into terms, each parsed into a
// predicate in order. Unquoted spaces cannot occur inside a well-formed
// nested predicate body, so paren tracking is not needed at this level.
func Line(text string, number int) (answerset.Set, error) {
	p := parser{}
	return p.set(text, number)
}

func (p *parser) set(text string, number int) (answerset.Set, error) {
	if text == "" {
		return answerset.New(nil, number), nil
	}
	var predicates []term.Predicate
	tail := text
	for tail != "" {
		tok, rest, found, err := scanAt(tail, ' ', true, false, p.line)
		if err != nil {
			return answerset.Set{}, err
		}
		pred, err := p.predicate(tok)
		if err != nil {
			return answerset.Set{}, err
		}
		predicates = append(predicates, pred)
		if !found {
			break
		}
		tail = rest
	}
	return answerset.New(predicates, number), nil
}
