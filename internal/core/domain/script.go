package domain

import "fmt"

// OperandPair is the numerator and divisor of one division.
type OperandPair struct {
	A float64 `toml:"a"`
	B float64 `toml:"b"`
}

// Expression renders the call as it is printed, e.g. "divide(10, 2)".
func (p OperandPair) Expression() string {
	return fmt.Sprintf("divide(%s, %s)", FormatOperand(p.A), FormatOperand(p.B))
}

// Script is the fixed sequence the runner replays: a greeting followed
// by one division per call, in order.
type Script struct {
	Greeting string        `toml:"greeting"`
	Calls    []OperandPair `toml:"call"`
}

// Validate checks that the script has something to print.
func (s Script) Validate() error {
	if s.Greeting == "" {
		return fmt.Errorf("%w: greeting is empty", ErrInvalidScript)
	}
	if len(s.Calls) == 0 {
		return fmt.Errorf("%w: no calls", ErrInvalidScript)
	}
	return nil
}
