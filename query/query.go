// Package query provides CEL expression filtering over answer sets.
//
// A Filter is compiled once from a Common Expression Language (CEL)
// expression and applied to any number of answer sets. The expression is
// evaluated against each top-level predicate with these variables bound:
//
//   - name:  the predicate's own name (string)
//   - arity: the number of direct children (int)
//   - args:  the rendered text of each direct child (list of string)
//   - names: every name contained in the subtree (list of string)
//
// Example:
//
//	f, err := query.Compile(`name == "edge" && arity == 2`)
//	if err != nil {
//		return err
//	}
//	edges, err := f.Apply(set)
package query

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/zero-day-ai/asp/answerset"
	"github.com/zero-day-ai/asp/term"
)

// Filter is a compiled predicate filter. A Filter is safe for concurrent
// use once compiled.
type Filter struct {
	prg cel.Program
}

// Compile compiles a CEL expression into a Filter. The expression must
// evaluate to a boolean for every predicate it is applied to.
func Compile(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("arity", cel.IntType),
		cel.Variable("args", cel.ListType(cel.StringType)),
		cel.Variable("names", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compile expression %q: %w", expr, iss.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build program for %q: %w", expr, err)
	}
	return &Filter{prg: prg}, nil
}

// Apply evaluates the filter against every top-level predicate of the set
// and returns a fresh set holding the predicates that matched, in their
// original relative order. The input set is never mutated.
func (f *Filter) Apply(set answerset.Set) (answerset.Set, error) {
	var matched []term.Predicate
	for _, p := range set.Predicates() {
		out, _, err := f.prg.Eval(activation(p))
		if err != nil {
			return answerset.Set{}, fmt.Errorf("evaluate filter: %w", err)
		}
		keep, ok := out.Value().(bool)
		if !ok {
			return answerset.Set{}, fmt.Errorf("filter expression must evaluate to bool, got %T", out.Value())
		}
		if keep {
			matched = append(matched, p)
		}
	}
	return answerset.New(matched, set.Number()), nil
}

// activation binds a predicate's fields to the filter's CEL variables.
func activation(p term.Predicate) map[string]any {
	children := p.Children()
	args := make([]string, len(children))
	for i, c := range children {
		args[i] = c.String()
	}
	return map[string]any{
		"name":  p.Name(),
		"arity": len(children),
		"args":  args,
		"names": p.Names(),
	}
}
