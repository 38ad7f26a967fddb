package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

func (r *Router) registerPrescriptionRoutes(
	api fiber.Router,
	h *handler.PrescriptionHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	rx := api.Group("/prescriptions", authRequired)

	rx.Get("/", requirePerm(authorize.ResourcePrescription, authorize.ActionList), h.List)
	rx.Get("/:id", requirePerm(authorize.ResourcePrescription, authorize.ActionRead), h.Get)
	rx.Post("/", requirePerm(authorize.ResourcePrescription, authorize.ActionCreate), h.Create)
	rx.Patch("/:id", requirePerm(authorize.ResourcePrescription, authorize.ActionUpdate), h.Update)
	rx.Post("/:id/complete", requirePerm(authorize.ResourcePrescription, authorize.ActionUpdate), h.Complete)
	rx.Post("/:id/discontinue", requirePerm(authorize.ResourcePrescription, authorize.ActionUpdate), h.Discontinue)
}
