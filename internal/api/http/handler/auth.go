package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/auth"
	pasetotoken "github.com/vaenkat/health-ecosystem-hub/pkg/paseto"
)

const msgCodeSent = "verification code sent to your email"

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// tokenPair renders the issued pair the same way for verify, login and
// refresh.
func tokenPair(c fiber.Ctx, t *auth.AuthTokens) error {
	return ok(c, fiber.Map{
		"access_token":  t.AccessToken,
		"refresh_token": t.RefreshToken,
		"expires_in":    t.ExpiresIn,
	})
}

// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	err := h.svc.Signup(c.Context(), auth.SignupRequest{
		Email:    body.Email,
		Password: body.Password,
		FullName: body.FullName,
		Phone:    body.Phone,
	})
	if err != nil {
		return mapAuthError(c, err)
	}
	return created(c, fiber.Map{"message": msgCodeSent})
}

// POST /api/v1/auth/verify-email
func (h *AuthHandler) VerifyEmail(c fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.VerifyEmail(c.Context(), auth.VerifyEmailRequest{Email: body.Email, Code: body.Code})
	if err != nil {
		return mapAuthError(c, err)
	}
	return tokenPair(c, tokens)
}

// POST /api/v1/auth/resend-code
func (h *AuthHandler) ResendCode(c fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.Email == "" {
		return badRequest(c, "email is required")
	}

	if err := h.svc.ResendCode(c.Context(), body.Email); err != nil {
		return mapAuthError(c, err)
	}
	return ok(c, fiber.Map{"message": msgCodeSent})
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{Email: body.Email, Password: body.Password})
	if err != nil {
		return mapAuthError(c, err)
	}
	return tokenPair(c, tokens)
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}
	return tokenPair(c, tokens)
}

// POST /api/v1/auth/logout  (requires AuthRequired middleware)
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return internalError(c)
	}
	return noContent(c)
}

// POST /api/v1/auth/change-password  (requires AuthRequired middleware)
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	userID, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CurrentPassword == "" || body.NewPassword == "" {
		return badRequest(c, "current_password and new_password are required")
	}

	err := h.svc.ChangePassword(c.Context(), userID, auth.ChangePasswordRequest{
		CurrentPassword: body.CurrentPassword,
		NewPassword:     body.NewPassword,
	})
	if err != nil {
		return mapAuthError(c, err)
	}
	return noContent(c)
}

// mapAuthError translates service sentinel errors to HTTP statuses. Anything
// unrecognized is a 500 with no detail leaked.
func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrOTPExpired),
		errors.Is(err, auth.ErrOTPInvalid),
		errors.Is(err, auth.ErrWrongPassword):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrOTPMaxAttempts),
		errors.Is(err, auth.ErrAccountLocked):
		return tooManyRequests(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrSessionNotFound),
		errors.Is(err, auth.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, auth.ErrAccountSuspended):
		return forbidden(c)
	case errors.Is(err, auth.ErrEmailNotVerified):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c)
	}
}
