// Package parse turns captured solver output into predicate trees and
// indexed answer sets.
//
// This package contains the full parsing pipeline: a quote/paren/escape
// aware scanner (Scan), a name decoder for quoted identifiers (DecodeName),
// a recursive-descent predicate parser (ParsePredicate), line-level answer
// set construction (Line), and the capture orchestrator (Raw) that frames
// answer blocks against the fixed solver trailer.
//
// Diagnostic line numbers are request-scoped: each top-level call threads
// its own counter through the recursion, so concurrent parses of
// independent captures never interfere.
package parse
