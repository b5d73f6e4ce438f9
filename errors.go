package asp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the parse failure taxonomy.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrConfiguration indicates invalid scanner parameters: the scan target
	// conflicts with a delimiter class the scanner was asked to honor. This
	// is a programming error, not a data error.
	ErrConfiguration = errors.New("scanner configuration conflict")

	// ErrUnterminatedQuote indicates an opened quote that never closes.
	ErrUnterminatedQuote = errors.New("unterminated quote")

	// ErrUnbalancedParens indicates an extra closing parenthesis or a missing
	// closing parenthesis at the end of a scan.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")

	// ErrMalformedPredicate indicates a term whose opening parenthesis has no
	// matching closing parenthesis at the end of the term.
	ErrMalformedPredicate = errors.New("malformed predicate")

	// ErrUnrecognizedStatus indicates a solver status line that is neither
	// SATISFIABLE nor UNSATISFIABLE.
	ErrUnrecognizedStatus = errors.New("unrecognized solver status")
)

// Error kinds categorize parse errors by their type.
const (
	// KindConfiguration represents invalid scanner configuration.
	KindConfiguration = "configuration"

	// KindUnterminatedQuote represents a quote that never closes.
	KindUnterminatedQuote = "unterminated_quote"

	// KindUnbalancedParens represents mismatched parentheses.
	KindUnbalancedParens = "unbalanced_parens"

	// KindMalformedPredicate represents a structurally invalid term.
	KindMalformedPredicate = "malformed_predicate"

	// KindUnrecognizedStatus represents an unknown solver status line.
	KindUnrecognizedStatus = "unrecognized_status"
)

// Error is a structured error type for parse operations. It wraps one of the
// sentinel errors with the operation that failed, the category of error, and
// enough source context (line number, text snippet) to diagnose a corrupted
// capture.
//
// Error implements the error interface and supports error unwrapping, making
// it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	_, err := parse.Raw(capture)
//	var perr *asp.Error
//	if errors.As(err, &perr) {
//		fmt.Println(perr.Kind, perr.Line, perr.Snippet)
//	}
type Error struct {
	// Op is the operation that failed (e.g., "parse.Scan", "parse.Raw").
	Op string

	// Kind categorizes the error (e.g., KindUnterminatedQuote).
	Kind string

	// Line is the one-based source line of the failure, or zero when the
	// parse was not tied to a multi-line capture.
	Line int

	// Snippet is a bounded excerpt of the offending text.
	Snippet string

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface, returning a formatted message that
// includes the operation, kind, underlying error, and source context.
func (e *Error) Error() string {
	msg := fmt.Sprintf("asp: %s (%s): %v", e.Op, e.Kind, e.Err)
	if e.Line > 0 {
		msg += fmt.Sprintf(" [line %d]", e.Line)
	}
	if e.Snippet != "" {
		msg += fmt.Sprintf(": %q", e.Snippet)
	}
	return msg
}

// Unwrap returns the underlying sentinel error, allowing errors.Is() and
// errors.As() to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching, allowing comparison against either the
// underlying sentinel or another *Error with a matching Kind.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// NewConfigurationError creates an *Error with KindConfiguration.
func NewConfigurationError(op, snippet string) *Error {
	return &Error{Op: op, Kind: KindConfiguration, Snippet: snippet, Err: ErrConfiguration}
}

// NewUnterminatedQuoteError creates an *Error with KindUnterminatedQuote.
func NewUnterminatedQuoteError(op string, line int, snippet string) *Error {
	return &Error{Op: op, Kind: KindUnterminatedQuote, Line: line, Snippet: snippet, Err: ErrUnterminatedQuote}
}

// NewUnbalancedParensError creates an *Error with KindUnbalancedParens.
func NewUnbalancedParensError(op string, line int, snippet string) *Error {
	return &Error{Op: op, Kind: KindUnbalancedParens, Line: line, Snippet: snippet, Err: ErrUnbalancedParens}
}

// NewMalformedPredicateError creates an *Error with KindMalformedPredicate.
func NewMalformedPredicateError(op string, line int, snippet string) *Error {
	return &Error{Op: op, Kind: KindMalformedPredicate, Line: line, Snippet: snippet, Err: ErrMalformedPredicate}
}

// NewUnrecognizedStatusError creates an *Error with KindUnrecognizedStatus.
func NewUnrecognizedStatusError(op, statusLine string) *Error {
	return &Error{Op: op, Kind: KindUnrecognizedStatus, Snippet: statusLine, Err: ErrUnrecognizedStatus}
}
