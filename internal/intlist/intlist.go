// Package intlist parses and renders the comma-separated integer lists
// the sort utilities accept, e.g. "5, 4, 3, 2, 1".
package intlist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a token that is not a valid base-10 integer literal.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid integer %q", e.Token)
}

// ErrTooFewElements is returned by callers that require a list of at
// least two elements. Parse itself accepts any length; the length gate
// belongs to the entry point.
var ErrTooFewElements = errors.New("need at least two elements")

// Parse converts comma-separated text into an integer sequence. Tokens
// are trimmed of surrounding space characters (spaces only, not tabs)
// before being parsed base-10. An empty input yields one empty token and
// therefore fails like any other malformed token.
func Parse(s string) ([]int, error) {
	tokens := strings.Split(s, ",")
	xs := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.Trim(tok, " "))
		if err != nil {
			return nil, &ParseError{Token: tok}
		}
		xs = append(xs, n)
	}
	return xs, nil
}

// Render joins a sequence back into the comma-separated form Parse
// accepts, so Parse(Render(xs)) round-trips for any non-empty xs.
func Render(xs []int) string {
	parts := make([]string, len(xs))
	for i, n := range xs {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// Format returns the bracketed display form the sort utilities print,
// e.g. "[1, 2, 3, 4, 5]".
func Format(xs []int) string {
	return "[" + Render(xs) + "]"
}
