// Package term defines the immutable predicate term produced by parsing
// ground solver output.
//
// A Predicate is a tree node: a name plus an ordered list of child
// predicates encoding argument position. Values are created once through
// New and never mutated afterwards; equality and hashing are structural
// over (name, children) and order-sensitive.
package term

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
	"strings"
)

// Predicate is an immutable ground predicate term.
//
// The zero value is usable as an empty-named leaf for comparison purposes,
// but callers should construct predicates through New so that the hash and
// contained-name set are populated.
type Predicate struct {
	name     string
	children []Predicate
	names    map[string]struct{}
	hash     uint64
}

// New constructs a predicate from a name and an ordered list of children.
// The children slice is copied; the returned value shares no mutable state
// with the arguments.
func New(name string, children ...Predicate) Predicate {
	p := Predicate{
		name:     name,
		children: append([]Predicate(nil), children...),
		names:    map[string]struct{}{name: {}},
	}
	for _, c := range p.children {
		for n := range c.names {
			p.names[n] = struct{}{}
		}
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	var buf [8]byte
	for _, c := range p.children {
		binary.BigEndian.PutUint64(buf[:], c.hash)
		h.Write(buf[:])
	}
	p.hash = h.Sum64()
	return p
}

// Name returns the predicate's own name.
func (p Predicate) Name() string {
	return p.name
}

// Arity returns the number of direct children.
func (p Predicate) Arity() int {
	return len(p.children)
}

// Children returns a copy of the ordered child list.
func (p Predicate) Children() []Predicate {
	return append([]Predicate(nil), p.children...)
}

// Child returns the i-th direct child. It panics if i is out of range, in
// keeping with slice indexing semantics.
func (p Predicate) Child(i int) Predicate {
	return p.children[i]
}

// Names returns every name contained in this predicate's subtree: its own
// name plus the names of all descendants, without repeats, in sorted order.
func (p Predicate) Names() []string {
	out := make([]string, 0, len(p.names))
	for n := range p.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ContainsName reports whether name appears anywhere in the subtree.
func (p Predicate) ContainsName(name string) bool {
	if p.names == nil {
		return p.name == name
	}
	_, ok := p.names[name]
	return ok
}

// Hash returns the structural hash computed at construction. Equal
// predicates have equal hashes.
func (p Predicate) Hash() uint64 {
	return p.hash
}

// Equal reports structural equality: names match and child sequences are
// equal element by element, order-sensitive.
func (p Predicate) Equal(o Predicate) bool {
	if p.name != o.name || len(p.children) != len(o.children) {
		return false
	}
	for i := range p.children {
		if !p.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// nameEscaper escapes backslashes and quotes inside a quoted rendering.
var nameEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// String renders the predicate in solver ground-term syntax. The name is
// emitted bare unless it contains a space, parenthesis, backslash, or
// quote, in which case it is double-quoted with backslashes and quotes
// escaped. A predicate with children renders as name(child1,child2,...).
func (p Predicate) String() string {
	name := p.name
	if strings.ContainsAny(name, " ()\\\"") {
		name = `"` + nameEscaper.Replace(name) + `"`
	}
	if len(p.children) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, c := range p.children {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}
