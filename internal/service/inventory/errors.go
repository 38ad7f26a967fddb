package inventory

import "errors"

var (
	ErrNotFound           = errors.New("inventory item not found")
	ErrMedicationNotFound = errors.New("medication not found")
	ErrAlreadyExists      = errors.New("medication already has an inventory row")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrInsufficientStock  = errors.New("insufficient stock for this adjustment")
)
