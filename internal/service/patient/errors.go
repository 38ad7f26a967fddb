package patient

import "errors"

var (
	ErrNotFound         = errors.New("patient not found")
	ErrAlreadyExists    = errors.New("user already has a patient record")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidBloodType = errors.New("blood type must be one of A/B/AB/O with +/-")
	ErrAccessDenied     = errors.New("access denied to this patient record")
)
