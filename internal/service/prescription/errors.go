package prescription

import "errors"

var (
	ErrNotFound           = errors.New("prescription not found")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrMedicationNotFound = errors.New("medication not found")
	ErrAccessDenied       = errors.New("access denied to this prescription")
	ErrInvalidTransition  = errors.New("prescription status transition not allowed")
	ErrStaleTransition    = errors.New("prescription was modified concurrently, reload and retry")
	ErrInvalidDates       = errors.New("end date must not be before start date")
)
