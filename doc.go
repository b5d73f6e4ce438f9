// Package asp provides parsing of captured answer-set-programming solver
// output into structured, queryable data.
//
// The module is specialized for the ground output of clingo-style solvers:
// a capture consists of zero or more answer lines, optional "Answer:<n>"
// headers, and a fixed eight-line trailer whose first line carries the
// solve status. Each answer line is a whitespace-separated sequence of
// ground terms of the form name or name(arg,arg,...), where names may be
// double-quoted and backslash-escaped.
//
// # Core Concepts
//
// The module is organized around a one-directional data flow:
//
//   - parse: quote/paren/escape-aware scanning, name decoding, and
//     recursive-descent construction of predicate trees from raw text
//   - term: the immutable Predicate tree node (name, ordered children,
//     derived arity and contained-name set)
//   - answerset: the immutable indexed Set of top-level predicates for one
//     solver answer, with exact, nested, and fuzzy lookup
//   - query: CEL expression filtering over answer sets
//   - export: serializable document form of parse results (YAML/JSON)
//
// # Getting Started
//
// Obtain the raw solver output (invoking the solver and capturing its
// standard output is the caller's responsibility), then parse it:
//
//	raw, err := os.ReadFile("out.as")
//	if err != nil {
//		log.Fatal(err)
//	}
//	answers, err := parse.Raw(string(raw))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, set := range answers {
//		edges := set.Lookup("edge", answerset.LookupOptions{})
//		fmt.Println(edges)
//	}
//
// # Error Handling
//
// All parse failures surface as *asp.Error values carrying the operation,
// an error kind, the one-based source line where known, and a bounded
// context snippet. Sentinel errors (ErrUnterminatedQuote and friends)
// support errors.Is checks. Input is assumed to come from a trusted solver,
// so every error indicates a corrupted capture or a bug; nothing is
// recovered locally or downgraded to a default value.
//
// # Concurrency
//
// Parsing is a pure value-to-value transformation with no shared state
// between invocations; all produced values are immutable after
// construction. Concurrent parses of independent captures are safe.
package asp
