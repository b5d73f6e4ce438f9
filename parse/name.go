package parse

import (
	"strings"

	"github.com/zero-day-ai/asp"
)

// DecodeName converts a raw scanned name, possibly containing quoted
// segments and escapes, into its canonical unescaped form. Unescaped
// quotes are structural and dropped from the output; a backslash escapes
// exactly the next character, where only \\ and \" decode to a single
// literal character. Any other character following a backslash is emitted
// as the literal two-character sequence unchanged.
//
// For example, the raw name
//
//	foo"()\"\\"bar
//
// decodes to
//
//	foo()"\bar
//
// DecodeName fails if the input ends while still inside a quoted segment.
func DecodeName(raw string) (string, error) {
	return decodeNameAt(raw, 0)
}

// decodeNameAt is DecodeName with a caller-supplied source line for
// diagnostics.
func decodeNameAt(raw string, line int) (string, error) {
	const op = "parse.DecodeName"
	var b strings.Builder
	inQuote := false
	escaped := false
	lastQuote := -1
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
			switch c {
			case '\\', '"':
				b.WriteByte(c)
			default:
				// Unrecognized escape: keep both characters.
				b.WriteByte('\\')
				b.WriteByte(c)
			}
		case c == '\\':
			escaped = true
		case c == '"':
			inQuote = !inQuote
			lastQuote = i
		default:
			b.WriteByte(c)
		}
	}
	if inQuote {
		return "", asp.NewUnterminatedQuoteError(op, line, quoteSnippet(raw, lastQuote))
	}
	return b.String(), nil
}
