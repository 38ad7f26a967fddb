package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrAccessDenied      = errors.New("access denied to this appointment")
	ErrInvalidTransition = errors.New("appointment status transition not allowed")
	ErrStaleTransition   = errors.New("appointment was modified concurrently, reload and retry")
	ErrDateInPast        = errors.New("appointment date must be in the future")
)
