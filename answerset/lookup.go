package answerset

import (
	"strings"

	"github.com/zero-day-ai/asp/term"
)

// LookupOptions controls how Lookup matches the search name against the
// set's indexes.
type LookupOptions struct {
	// Nested searches every name nested anywhere inside a predicate, not
	// just its own name. With Nested set, bar(foo) matches a search for
	// either "bar" or "foo".
	Nested bool

	// Fuzzy matches index keys that merely contain the search term as a
	// substring, rather than only exact keys. A predicate named "baz"
	// matches any of "b", "ba", "az", or "baz" (but not "bz").
	Fuzzy bool
}

// Lookup returns the top-level predicates whose indexed names match name,
// wrapped in a fresh Set. The receiver is never mutated. Non-fuzzy exact
// lookups preserve the original relative order of the matched predicates;
// fuzzy results follow index iteration order, which is not guaranteed.
//
// With both Fuzzy and Nested set, only individual indexed names are
// searched, never the rendered text of a predicate: the index is built
// from names alone, so a search spanning a name and structural punctuation
// (such as "r(f" against bar(foo)) will not match.
func (s Set) Lookup(name string, opts LookupOptions) Set {
	index := s.byName
	if opts.Nested {
		index = s.byNested
	}
	if opts.Fuzzy {
		var matched []term.Predicate
		for key, bucket := range index {
			if strings.Contains(key, name) {
				matched = append(matched, bucket...)
			}
		}
		return New(matched, 0)
	}
	if bucket, ok := index[name]; ok {
		return New(bucket, 0)
	}
	return New(nil, 0)
}
