package ordering

import "errors"

// Typed failures of the order transaction. The HTTP boundary maps these onto
// wire error codes; anything not listed here is an unexpected internal error.
var (
	ErrEmptyOrder        = errors.New("ordering: order has no items")
	ErrInvalidQuantity   = errors.New("ordering: item quantity must be positive")
	ErrProductNotFound   = errors.New("ordering: product not found")
	ErrInsufficientStock = errors.New("ordering: insufficient stock")
	ErrWilayaNotFound    = errors.New("ordering: wilaya not found")
	ErrBaladiyaNotFound  = errors.New("ordering: baladiya not found")

	// ErrTrackingConflict and ErrCustomerConflict mark unique-constraint
	// races that are safe to retry with a fresh transaction.
	ErrTrackingConflict = errors.New("ordering: tracking number already exists")
	ErrCustomerConflict = errors.New("ordering: customer was created concurrently")

	ErrTrackingExhausted = errors.New("ordering: tracking number generation exhausted")
)

// Retriable reports whether the failure came from a uniqueness race rather
// than a business rule, so the whole transaction may be retried.
func Retriable(err error) bool {
	return errors.Is(err, ErrTrackingConflict) || errors.Is(err, ErrCustomerConflict)
}
