package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

func (r *Router) registerMedicationRoutes(
	api fiber.Router,
	h *handler.MedicationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	meds := api.Group("/medications", authRequired)

	meds.Get("/", requirePerm(authorize.ResourceMedication, authorize.ActionList), h.List)
	meds.Get("/:id", requirePerm(authorize.ResourceMedication, authorize.ActionRead), h.Get)
	meds.Post("/", requirePerm(authorize.ResourceMedication, authorize.ActionCreate), h.Create)
	meds.Patch("/:id", requirePerm(authorize.ResourceMedication, authorize.ActionUpdate), h.Update)
	meds.Delete("/:id", requirePerm(authorize.ResourceMedication, authorize.ActionDelete), h.Delete)
}
