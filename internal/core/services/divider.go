package services

import (
	"fmt"
	"io"

	"github.com/custodia-labs/warp/internal/core/domain"
	"github.com/custodia-labs/warp/internal/core/ports/driving"
	"github.com/custodia-labs/warp/internal/logger"
)

// Ensure DividerService implements the interface.
var _ driving.DividerService = (*DividerService)(nil)

// DivisionByZeroMessage is the diagnostic written when the divisor is zero.
const DivisionByZeroMessage = "Error: Cannot divide by zero"

// DividerService divides two numbers, guarding against a zero divisor.
type DividerService struct {
	diag io.Writer
}

// NewDividerService creates a divider that writes diagnostics to diag.
// A nil writer discards them.
func NewDividerService(diag io.Writer) *DividerService {
	if diag == nil {
		diag = io.Discard
	}
	return &DividerService{diag: diag}
}

// Divide returns a / b. When b is zero (either sign) it writes
// DivisionByZeroMessage to the diagnostic writer and returns the absent
// quotient; the numerator is never inspected on that path.
func (s *DividerService) Divide(a, b float64) domain.Quotient {
	if b == 0 {
		logger.Debug("divide(%s, %s): %v", domain.FormatOperand(a), domain.FormatOperand(b), domain.ErrDivisionByZero)
		// The diagnostic is best effort; a failing writer must not turn
		// the sentinel into an error.
		_, _ = fmt.Fprintln(s.diag, DivisionByZeroMessage)
		return domain.NoQuotient()
	}

	q := domain.QuotientOf(a / b)
	logger.Debug("divide(%s, %s) = %s", domain.FormatOperand(a), domain.FormatOperand(b), q)
	return q
}
