package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)

	// Self-service: enforced in the caller's own user:<id> domain.
	users.Get("/me", requirePerm(authorize.ResourceProfile, authorize.ActionRead), h.GetMe)
	users.Get("/me/profile", requirePerm(authorize.ResourceProfile, authorize.ActionRead), h.GetProfile)
	users.Patch("/me/profile", requirePerm(authorize.ResourceProfile, authorize.ActionUpdate), h.UpdateProfile)
	users.Get("/me/roles", requirePerm(authorize.ResourceRoleAssignment, authorize.ActionRead), h.ListMyRoles)

	// Administrative role grants: no role other than admin holds
	// grant/revoke, so these gates resolve through the admin bypass.
	users.Get("/:id/roles", requirePerm(authorize.ResourceRoleAssignment, authorize.ActionList), h.ListRoles)
	users.Post("/:id/roles", requirePerm(authorize.ResourceRoleAssignment, authorize.ActionGrant), h.GrantRole)
	users.Delete("/:id/roles/:role", requirePerm(authorize.ResourceRoleAssignment, authorize.ActionRevoke), h.RevokeRole)
}
