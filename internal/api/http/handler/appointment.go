package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/appointment"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/viewer"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

type AppointmentHandler struct {
	svc  appointment.Service
	auth authorize.IAuthorization
}

func NewAppointmentHandler(svc appointment.Service, auth authorize.IAuthorization) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, auth: auth}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, viewer.ErrUnauthenticated):
		return unauthorized(c)
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, appointment.ErrInvalidTransition):
		return unprocessable(c, err.Error())
	case errors.Is(err, appointment.ErrStaleTransition):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrDateInPast):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
		StaffID   string `query:"staff_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.StaffID != "" {
		id, err := uuid.Parse(q.StaffID)
		if err != nil {
			return badRequest(c, "invalid staff_id")
		}
		req.StaffID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	v, err := resolveViewer(c, h.auth)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	appts, err := h.svc.List(c.Context(), v, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	v, err := resolveViewer(c, h.auth)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	appt, err := h.svc.GetByID(c.Context(), v, id)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID       string    `json:"patient_id"`
		StaffID         string    `json:"staff_id"`
		AppointmentDate time.Time `json:"appointment_date"`
		Department      string    `json:"department"`
		Reason          *string   `json:"reason"`
		Notes           *string   `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	staffID, err := uuid.Parse(body.StaffID)
	if err != nil {
		return badRequest(c, "invalid staff_id")
	}

	appt, err := h.svc.Create(c.Context(), appointment.CreateRequest{
		PatientID:       patientID,
		StaffID:         staffID,
		AppointmentDate: body.AppointmentDate,
		Department:      body.Department,
		Reason:          body.Reason,
		Notes:           body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PATCH /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		AppointmentDate *time.Time `json:"appointment_date"`
		Department      *string    `json:"department"`
		Reason          *string    `json:"reason"`
		Notes           *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Update(c.Context(), id, appointment.UpdateRequest{
		AppointmentDate: body.AppointmentDate,
		Department:      body.Department,
		Reason:          body.Reason,
		Notes:           body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Complete(c.Context(), id); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Cancel(c.Context(), id); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}

// POST /appointments/:id/no-show
func (h *AppointmentHandler) MarkNoShow(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.MarkNoShow(c.Context(), id); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
