package domain

import "errors"

// Domain errors represent arithmetic and input failures.
// None of them is fatal to a run.
var (
	// ErrDivisionByZero marks a division whose divisor was zero.
	// It is recorded on the absent Quotient and never returned by the divider.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidOperand indicates an operand that could not be parsed as a number.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrInvalidScript indicates a demo script with no greeting or no calls.
	ErrInvalidScript = errors.New("invalid script")
)
