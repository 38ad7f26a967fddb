package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

func (r *Router) registerInventoryRoutes(
	api fiber.Router,
	h *handler.InventoryHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	inv := api.Group("/inventory", authRequired)

	inv.Get("/", requirePerm(authorize.ResourceInventoryItem, authorize.ActionList), h.List)
	inv.Get("/medication/:medicationId", requirePerm(authorize.ResourceInventoryItem, authorize.ActionRead), h.GetByMedication)
	inv.Get("/:id", requirePerm(authorize.ResourceInventoryItem, authorize.ActionRead), h.Get)
	inv.Post("/", requirePerm(authorize.ResourceInventoryItem, authorize.ActionCreate), h.Create)
	inv.Patch("/:id", requirePerm(authorize.ResourceInventoryItem, authorize.ActionUpdate), h.Update)
	inv.Post("/:id/adjust", requirePerm(authorize.ResourceInventoryItem, authorize.ActionUpdate), h.Adjust)
}
