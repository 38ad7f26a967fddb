package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidFullName):
		return unprocessable(c, err.Error())
	case errors.Is(err, user.ErrInvalidPhone):
		return unprocessable(c, err.Error())
	case errors.Is(err, user.ErrInvalidURL):
		return unprocessable(c, err.Error())
	case errors.Is(err, user.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrRoleAlreadyGranted):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrRoleNotGranted):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrSelfRevoke):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// GET /users/me/profile
func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, p)
}

// PATCH /users/me/profile
func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FullName  *string `json:"full_name"`
		Phone     *string `json:"phone"`
		AvatarURL *string `json:"avatar_url"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.UpdateProfile(c.Context(), userID, user.UpdateProfileRequest{
		FullName:  body.FullName,
		Phone:     body.Phone,
		AvatarURL: body.AvatarURL,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, p)
}

// GET /users/me/roles
func (h *UserHandler) ListMyRoles(c fiber.Ctx) error {
	userID, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	roles, err := h.svc.ListRoles(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{"roles": roles})
}

// ---------------------------------------------------------------------------
// Role administration (admin only, gated by RBAC middleware)
// ---------------------------------------------------------------------------

// GET /users/:id/roles
func (h *UserHandler) ListRoles(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	roles, err := h.svc.ListRoles(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{"roles": roles})
}

// POST /users/:id/roles
func (h *UserHandler) GrantRole(c fiber.Ctx) error {
	adminID, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Role == "" {
		return badRequest(c, "role is required")
	}

	if err := h.svc.GrantRole(c.Context(), adminID, userID, body.Role); err != nil {
		return mapUserError(c, err)
	}

	return created(c, fiber.Map{"message": "role granted"})
}

// DELETE /users/:id/roles/:role
func (h *UserHandler) RevokeRole(c fiber.Ctx) error {
	adminID, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	role := c.Params("role")
	if role == "" {
		return badRequest(c, "role is required")
	}

	if err := h.svc.RevokeRole(c.Context(), adminID, userID, role); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}
