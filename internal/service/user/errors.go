package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidFullName    = errors.New("full name must be 255 characters or less")
	ErrInvalidPhone       = errors.New("invalid phone number for the specified region")
	ErrInvalidURL         = errors.New("avatar URL must be a valid URL")
	ErrInvalidRole        = errors.New("unknown application role")
	ErrRoleAlreadyGranted = errors.New("user already holds this role")
	ErrRoleNotGranted     = errors.New("user does not hold this role")
	ErrSelfRevoke         = errors.New("admins cannot revoke their own admin role")
)
