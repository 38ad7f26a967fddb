package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

func (r *Router) registerOrderRoutes(
	api fiber.Router,
	h *handler.OrderHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	orders := api.Group("/orders", authRequired)

	orders.Get("/", requirePerm(authorize.ResourceHospitalOrder, authorize.ActionList), h.List)
	orders.Get("/:id", requirePerm(authorize.ResourceHospitalOrder, authorize.ActionRead), h.Get)
	orders.Post("/", requirePerm(authorize.ResourceHospitalOrder, authorize.ActionCreate), h.Create)

	// Approve/cancel/fulfill are update-gated: pharmacy staff and admin.
	orders.Post("/:id/approve", requirePerm(authorize.ResourceHospitalOrder, authorize.ActionUpdate), h.Approve)
	orders.Post("/:id/cancel", requirePerm(authorize.ResourceHospitalOrder, authorize.ActionUpdate), h.Cancel)
	orders.Post("/:id/fulfill", requirePerm(authorize.ResourceHospitalOrder, authorize.ActionUpdate), h.Fulfill)
}
