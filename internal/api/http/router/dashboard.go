package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

func (r *Router) registerDashboardRoutes(
	api fiber.Router,
	h *handler.DashboardHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	dash := api.Group("/dashboard", authRequired, requirePerm(authorize.ResourceDashboard, authorize.ActionRead))

	dash.Get("/patient", h.Patient)
	dash.Get("/hospital", h.Hospital)
	dash.Get("/pharmacy", h.Pharmacy)
}
