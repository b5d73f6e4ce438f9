// Package answerset provides the immutable, indexed collection of
// top-level predicates for one solver answer.
//
// A Set caches its predicates by their own names and by every name nested
// anywhere inside them, enabling quick exact, nested, and fuzzy lookups.
// Indexes are built once at construction and never mutated; lookups return
// fresh Set values and never modify the receiver.
package answerset

import (
	"strings"

	"github.com/zero-day-ai/asp/term"
)

// Set is an immutable, indexed, ordered collection of top-level predicates
// for one solver answer.
type Set struct {
	predicates []term.Predicate
	number     int
	byName     map[string][]term.Predicate
	byNested   map[string][]term.Predicate
}

// New constructs a Set from an ordered predicate list and a solver answer
// number. The predicate slice is copied, and both lookup indexes are built
// immediately, preserving encounter order within each bucket.
func New(predicates []term.Predicate, number int) Set {
	s := Set{
		predicates: append([]term.Predicate(nil), predicates...),
		number:     number,
		byName:     make(map[string][]term.Predicate),
		byNested:   make(map[string][]term.Predicate),
	}
	for _, p := range s.predicates {
		s.byName[p.Name()] = append(s.byName[p.Name()], p)
		for _, n := range p.Names() {
			s.byNested[n] = append(s.byNested[n], p)
		}
	}
	return s
}

// Predicates returns a copy of the top-level predicates in original input
// order.
func (s Set) Predicates() []term.Predicate {
	return append([]term.Predicate(nil), s.predicates...)
}

// Number returns the solver answer number this set came from. Sets built
// without an explicit number report zero.
func (s Set) Number() int {
	return s.number
}

// Len returns the number of top-level predicates.
func (s Set) Len() int {
	return len(s.predicates)
}

// IsEmpty reports whether the set holds no predicates.
func (s Set) IsEmpty() bool {
	return len(s.predicates) == 0
}

// Contains reports whether p is one of the top-level predicates.
func (s Set) Contains(p term.Predicate) bool {
	for _, q := range s.predicates {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold equal predicate sequences. The
// answer number and the derived indexes are not part of equality.
func (s Set) Equal(o Set) bool {
	if len(s.predicates) != len(o.predicates) {
		return false
	}
	for i := range s.predicates {
		if !s.predicates[i].Equal(o.predicates[i]) {
			return false
		}
	}
	return true
}

// String renders the set as its predicates' text joined by single spaces,
// in original order.
func (s Set) String() string {
	parts := make([]string, len(s.predicates))
	for i, p := range s.predicates {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
