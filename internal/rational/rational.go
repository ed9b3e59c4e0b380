// Package rational implements the fraction-math utility's core: exact
// arbitrary-precision rationals kept in lowest terms, the closed operator
// token set, and an evaluator over both. No operation ever rounds.
package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrDivisionByZero is returned when the right operand of a division is
// the zero rational.
var ErrDivisionByZero = errors.New("division by zero")

// OperandError reports a string that is not a valid rational literal.
type OperandError struct {
	Token string
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("invalid operand %q", e.Token)
}

// Rational is an immutable exact fraction. The zero value is 0/1. The
// backing big.Rat keeps numerator and denominator in lowest terms with
// the denominator always positive.
type Rational struct {
	rat *big.Rat
}

// New returns num/den reduced to lowest terms, or ErrDivisionByZero for
// a zero denominator.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{rat: big.NewRat(num, den)}, nil
}

// FromInt returns n as a rational with denominator 1.
func FromInt(n int64) Rational {
	return Rational{rat: new(big.Rat).SetInt64(n)}
}

// Parse reads a rational literal: an optionally signed integer ("-3"),
// fraction ("1/2"), or decimal ("2.5", exponent forms included), the
// surface big.Rat.SetString accepts. Surrounding whitespace is tolerated.
// A zero denominator in the literal is not a valid rational (the
// denominator must be positive) and fails like any malformed token.
func Parse(s string) (Rational, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Rational{}, &OperandError{Token: s}
	}
	r, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return Rational{}, &OperandError{Token: s}
	}
	return Rational{rat: r}, nil
}

// val guards the zero value so every method sees a usable 0/1.
func (r Rational) val() *big.Rat {
	if r.rat == nil {
		return new(big.Rat)
	}
	return r.rat
}

// Num returns a copy of the numerator in lowest terms.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.val().Num())
}

// Den returns a copy of the denominator in lowest terms; always positive.
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(r.val().Denom())
}

// Sign returns -1, 0, or +1.
func (r Rational) Sign() int {
	return r.val().Sign()
}

// Cmp compares r and other exactly: -1 if r < other, 0 if equal, +1 if
// r > other.
func (r Rational) Cmp(other Rational) int {
	return r.val().Cmp(other.val())
}

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	return Rational{rat: new(big.Rat).Add(r.val(), other.val())}
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	return Rational{rat: new(big.Rat).Sub(r.val(), other.val())}
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	return Rational{rat: new(big.Rat).Mul(r.val(), other.val())}
}

// Div returns r / other, or ErrDivisionByZero when other is zero.
func (r Rational) Div(other Rational) (Rational, error) {
	if other.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{rat: new(big.Rat).Quo(r.val(), other.val())}, nil
}

// String renders the reduced fraction: "5/6" for proper fractions, just
// the numerator ("2", "0", "-3") when the denominator is 1.
func (r Rational) String() string {
	return r.val().RatString()
}
