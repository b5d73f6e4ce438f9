package parse

import "github.com/zero-day-ai/asp"

// quoteContext bounds the width of the snippet reported around the opening
// quote of an unterminated quoted string.
const quoteContext = 5

// Scan splits text at the first qualifying occurrence of target, returning
// the text before it and the text after it (the target character itself is
// in neither). If no qualifying occurrence exists, prefix is the whole
// input and found is false.
//
// While scanning, a backslash escapes exactly the next character; escaped
// characters never trigger quote, paren, or target matching. With
// honorQuotes, an unescaped double quote toggles quoted state and quoted
// target characters are ignored. With honorParens, the target only counts
// outside of any (potentially nested) parentheses; an extra closing paren
// fails immediately, and a missing one fails at end of scan.
//
// Asking for target '"' while honoring quotes, or for a parenthesis while
// honoring parens, is a configuration error and fails regardless of input.
func Scan(text string, target byte, honorQuotes, honorParens bool) (prefix, rest string, found bool, err error) {
	return scanAt(text, target, honorQuotes, honorParens, 0)
}

// scanAt is Scan with a caller-supplied source line for diagnostics.
func scanAt(text string, target byte, honorQuotes, honorParens bool, line int) (string, string, bool, error) {
	const op = "parse.Scan"
	if target == '"' && honorQuotes {
		return "", "", false, asp.NewConfigurationError(op, "cannot search for a quote while honoring quotes")
	}
	if (target == '(' || target == ')') && honorParens {
		return "", "", false, asp.NewConfigurationError(op, "cannot search for a parenthesis while honoring parentheses")
	}
	if text == "" {
		return "", "", false, nil
	}

	inQuote := false
	escaped := false
	depth := 0
	lastQuote := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\':
			escaped = true
		case c == '"' && honorQuotes:
			inQuote = !inQuote
			lastQuote = i
		case c == '(' && honorParens && !inQuote:
			depth++
		case c == ')' && honorParens && !inQuote:
			depth--
			if depth < 0 {
				// Extra closing paren: report the text consumed so far.
				return "", "", false, asp.NewUnbalancedParensError(op, line, text[:i+1])
			}
		case c == target && !inQuote && depth == 0:
			return text[:i], text[i+1:], true, nil
		}
	}

	if inQuote {
		return "", "", false, asp.NewUnterminatedQuoteError(op, line, quoteSnippet(text, lastQuote))
	}
	if depth != 0 {
		return "", "", false, asp.NewUnbalancedParensError(op, line, text)
	}
	return text, "", false, nil
}

// quoteSnippet returns a bounded excerpt of text centered on the opening
// quote at index at.
func quoteSnippet(text string, at int) string {
	lo := at - quoteContext
	if lo < 0 {
		lo = 0
	}
	hi := at + quoteContext
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
