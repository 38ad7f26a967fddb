package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/internal/api/http/handler"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	h *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), h.List)
	appts.Get("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), h.Get)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), h.Create)
	appts.Patch("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.Update)
	appts.Post("/:id/complete", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.Complete)
	appts.Post("/:id/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.Cancel)
	appts.Post("/:id/no-show", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.MarkNoShow)
}
