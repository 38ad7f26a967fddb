package labreport

import "errors"

var (
	ErrNotFound          = errors.New("lab report not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrAccessDenied      = errors.New("access denied to this lab report")
	ErrInvalidTransition = errors.New("lab report status transition not allowed")
	ErrStaleTransition   = errors.New("lab report was modified concurrently, reload and retry")
	ErrResultsRequired   = errors.New("results are required to complete a lab report")
)
