package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zero-day-ai/asp"
	"github.com/zero-day-ai/asp/answerset"
)

// Solver status indicator values recognized on the first trailer line.
const (
	// StatusSatisfiable marks a capture holding one or more answers.
	StatusSatisfiable = "SATISFIABLE"

	// StatusUnsatisfiable marks a capture for a program with no solutions.
	StatusUnsatisfiable = "UNSATISFIABLE"
)

// trailerLines is the fixed number of lines terminating solver output:
// the status indicator plus seven uninterpreted statistics lines.
const trailerLines = 8

// answerPrefix marks a content line that switches the current answer
// number instead of carrying predicates.
const answerPrefix = "Answer:"

// Raw parses a complete solver output capture into an ordered list of
// answer sets.
//
// The last eight lines of the capture are the trailer and are never parsed
// as predicate content. If the trailer's status line reads UNSATISFIABLE,
// Raw returns an empty list and no error: absence of solutions is not a
// failure. If it reads SATISFIABLE, every remaining content line is parsed
// in order, with Answer:<n> headers switching the answer number applied to
// the sets that follow. Any other status fails, echoing the offending line.
func Raw(raw string) ([]answerset.Set, error) {
	const op = "parse.Raw"
	lines := strings.Split(raw, "\n")
	var content, trailer []string
	if len(lines) > trailerLines {
		content = lines[:len(lines)-trailerLines]
		trailer = lines[len(lines)-trailerLines:]
	} else {
		trailer = lines
	}

	sets := []answerset.Set{}
	switch trailer[0] {
	case StatusUnsatisfiable:
		return sets, nil
	case StatusSatisfiable:
	default:
		return nil, asp.NewUnrecognizedStatusError(op, trailer[0])
	}

	p := parser{}
	number := 0
	for _, line := range content {
		p.line++
		if strings.HasPrefix(line, answerPrefix) {
			n, err := strconv.Atoi(strings.TrimSpace(line[len(answerPrefix):]))
			if err != nil {
				return nil, fmt.Errorf("asp: %s: invalid answer header %q [line %d]: %w", op, line, p.line, err)
			}
			number = n
			continue
		}
		set, err := p.set(line, number)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}
