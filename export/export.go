// Package export provides a serializable document form of parse results.
//
// A Document captures the answer sets of one parsed solver capture in a
// plain struct tree suitable for YAML or JSON serialization, tagged with a
// unique identifier and creation timestamp. Documents round-trip: the
// answer sets reconstructed from a document are structurally equal to the
// sets it was built from.
package export

import (
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/asp/answerset"
	"github.com/zero-day-ai/asp/term"
)

// Term is the serialized form of a single predicate tree node.
type Term struct {
	// Name is the decoded predicate name.
	Name string `json:"name" yaml:"name"`

	// Args are the ordered child terms, if any.
	Args []Term `json:"args,omitempty" yaml:"args,omitempty"`
}

// Answer is the serialized form of one answer set.
type Answer struct {
	// Number is the solver answer number the set came from.
	Number int `json:"number" yaml:"number"`

	// Predicates are the top-level terms in original input order.
	Predicates []Term `json:"predicates" yaml:"predicates"`
}

// Document is the serialized form of a parsed capture.
type Document struct {
	// ID is a unique identifier for this document.
	ID string `json:"id" yaml:"id"`

	// CreatedAt is the timestamp when the document was built.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Answers holds one entry per answer set, in capture order. An empty
	// list corresponds to an unsatisfiable capture.
	Answers []Answer `json:"answers" yaml:"answers"`
}

// NewDocument builds a Document from parsed answer sets, assigning a fresh
// identifier and creation time.
func NewDocument(sets []answerset.Set) Document {
	doc := Document{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Answers:   make([]Answer, 0, len(sets)),
	}
	for _, s := range sets {
		doc.Answers = append(doc.Answers, newAnswer(s))
	}
	return doc
}

func newAnswer(s answerset.Set) Answer {
	preds := s.Predicates()
	a := Answer{
		Number:     s.Number(),
		Predicates: make([]Term, 0, len(preds)),
	}
	for _, p := range preds {
		a.Predicates = append(a.Predicates, newTerm(p))
	}
	return a
}

func newTerm(p term.Predicate) Term {
	t := Term{Name: p.Name()}
	for _, c := range p.Children() {
		t.Args = append(t.Args, newTerm(c))
	}
	return t
}

// Predicate reconstructs the immutable predicate value for this term.
func (t Term) Predicate() term.Predicate {
	children := make([]term.Predicate, 0, len(t.Args))
	for _, a := range t.Args {
		children = append(children, a.Predicate())
	}
	return term.New(t.Name, children...)
}

// Set reconstructs the indexed answer set for this answer.
func (a Answer) Set() answerset.Set {
	preds := make([]term.Predicate, 0, len(a.Predicates))
	for _, t := range a.Predicates {
		preds = append(preds, t.Predicate())
	}
	return answerset.New(preds, a.Number)
}

// Sets reconstructs every answer set in the document, in order.
func (d Document) Sets() []answerset.Set {
	sets := make([]answerset.Set, 0, len(d.Answers))
	for _, a := range d.Answers {
		sets = append(sets, a.Set())
	}
	return sets
}

// YAML serializes the document as YAML.
func (d Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// FromYAML deserializes a document previously serialized with YAML.
func FromYAML(data []byte) (Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, err
	}
	return d, nil
}
