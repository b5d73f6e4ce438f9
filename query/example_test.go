package query_test

import (
	"fmt"

	"github.com/zero-day-ai/asp/answerset"
	"github.com/zero-day-ai/asp/query"
	"github.com/zero-day-ai/asp/term"
)

func ExampleFilter_Apply() {
	set := answerset.New([]term.Predicate{
		term.New("edge", term.New("a"), term.New("b")),
		term.New("node", term.New("a")),
		term.New("node", term.New("b")),
	}, 1)

	f, err := query.Compile(`name == "edge" || arity == 0`)
	if err != nil {
		fmt.Println(err)
		return
	}

	got, err := f.Apply(set)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(got)
	// Output:
	// edge(a,b)
}
