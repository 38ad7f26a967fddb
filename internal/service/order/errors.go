package order

import "errors"

var (
	ErrNotFound           = errors.New("hospital order not found")
	ErrMedicationNotFound = errors.New("medication not found")
	ErrInvalidQuantity    = errors.New("order quantity must be positive")
	ErrInvalidUrgency     = errors.New("urgency must be normal, urgent or emergency")
	ErrInvalidTransition  = errors.New("order status transition not allowed")
	ErrStaleTransition    = errors.New("order was modified concurrently, reload and retry")
	ErrNoInventory        = errors.New("no inventory row exists for the ordered medication")
	ErrInsufficientStock  = errors.New("insufficient stock to fulfill this order")
)
