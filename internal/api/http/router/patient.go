package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	h *handler.PatientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), h.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), h.Create)
	patients.Get("/me", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.GetSelf)
	patients.Get("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.Get)
	patients.Patch("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), h.Update)
}
