package domain

import (
	"math"
	"strconv"
	"strings"
)

// NoneToken is how an absent quotient is rendered.
const NoneToken = "None"

// Quotient is the result of a guarded division.
// The zero value is an absent quotient.
type Quotient struct {
	value float64
	ok    bool
}

// QuotientOf returns a present quotient holding v.
func QuotientOf(v float64) Quotient {
	return Quotient{value: v, ok: true}
}

// NoQuotient returns the absent quotient produced by a zero divisor.
func NoQuotient() Quotient {
	return Quotient{}
}

// OK reports whether the quotient holds a number.
func (q Quotient) OK() bool {
	return q.ok
}

// Value returns the numeric quotient and whether it is present.
func (q Quotient) Value() (float64, bool) {
	return q.value, q.ok
}

// Err returns ErrDivisionByZero for an absent quotient, nil otherwise.
func (q Quotient) Err() error {
	if !q.ok {
		return ErrDivisionByZero
	}
	return nil
}

// String renders the quotient as a float repr, or NoneToken when absent.
func (q Quotient) String() string {
	if !q.ok {
		return NoneToken
	}
	return FormatFloat(q.value)
}

// FormatFloat renders v the way a shortest round-trip float repr does:
// integral values keep a ".0" suffix and very small or very large
// magnitudes switch to exponent notation.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatOperand renders an operand in shortest decimal form. Integral
// operands print without a fractional part ("10"), others as FormatFloat.
func FormatOperand(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e16 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return FormatFloat(v)
}
