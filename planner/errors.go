package planner

import (
	"errors"
	"fmt"
)

// ErrMissingInput is returned when the request lacks an origin, a
// destination, or a balance for TransitCard payment. Rejected before any
// computation.
var ErrMissingInput = errors.New("planner: missing required input")

// InsufficientBalanceError reports that the selected itinerary costs more
// than the transit card balance. The itinerary set is still produced; the
// caller is expected to pick another itinerary or payment method, not to
// retry the same request.
type InsufficientBalanceError struct {
	Required  float64
	Balance   float64
	Shortfall float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("planner: insufficient balance: required %.2f, have %.2f (short %.2f)", e.Required, e.Balance, e.Shortfall)
}
