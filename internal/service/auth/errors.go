package auth

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email address already registered")
	ErrInvalidEmail       = errors.New("invalid email address format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrOTPExpired         = errors.New("verification code has expired or does not exist")
	ErrOTPInvalid         = errors.New("verification code is incorrect")
	ErrOTPMaxAttempts     = errors.New("too many incorrect verification attempts")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrEmailNotVerified   = errors.New("email address is not verified")
	ErrAccountLocked      = errors.New("account temporarily locked due to repeated login failures")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
