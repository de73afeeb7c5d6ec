// Package domain defines the core value types for warp.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Quotient: the result of a guarded division, possibly absent
//   - OperandPair: the two operands of one division
//   - Script: the greeting and operand pairs replayed by the runner
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
