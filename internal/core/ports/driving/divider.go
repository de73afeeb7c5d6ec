package driving

import "github.com/custodia-labs/warp/internal/core/domain"

// DividerService performs guarded division for external actors.
type DividerService interface {
	// Divide returns a / b, or the absent quotient when b is zero.
	// The zero-divisor path writes a diagnostic instead of returning an error.
	Divide(a, b float64) domain.Quotient
}
