package medication

import "errors"

var (
	ErrNotFound      = errors.New("medication not found")
	ErrNameRequired  = errors.New("medication name is required")
	ErrAlreadyExists = errors.New("a medication with this name already exists")
	ErrInUse         = errors.New("medication is referenced by prescriptions, inventory or orders")
)
