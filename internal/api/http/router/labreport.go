package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

func (r *Router) registerLabReportRoutes(
	api fiber.Router,
	h *handler.LabReportHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	labs := api.Group("/lab-reports", authRequired)

	labs.Get("/", requirePerm(authorize.ResourceLabReport, authorize.ActionList), h.List)
	labs.Get("/:id", requirePerm(authorize.ResourceLabReport, authorize.ActionRead), h.Get)
	labs.Post("/", requirePerm(authorize.ResourceLabReport, authorize.ActionCreate), h.Create)
	labs.Post("/:id/complete", requirePerm(authorize.ResourceLabReport, authorize.ActionUpdate), h.Complete)
	labs.Post("/:id/review", requirePerm(authorize.ResourceLabReport, authorize.ActionUpdate), h.Review)
}
