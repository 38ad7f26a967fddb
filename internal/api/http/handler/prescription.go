package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/prescription"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/viewer"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

type PrescriptionHandler struct {
	svc  prescription.Service
	auth authorize.IAuthorization
}

func NewPrescriptionHandler(svc prescription.Service, auth authorize.IAuthorization) *PrescriptionHandler {
	return &PrescriptionHandler{svc: svc, auth: auth}
}

func mapPrescriptionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, viewer.ErrUnauthenticated):
		return unauthorized(c)
	case errors.Is(err, prescription.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, prescription.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, prescription.ErrMedicationNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, prescription.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, prescription.ErrInvalidTransition):
		return unprocessable(c, err.Error())
	case errors.Is(err, prescription.ErrStaleTransition):
		return conflict(c, err.Error())
	case errors.Is(err, prescription.ErrInvalidDates):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /prescriptions
func (h *PrescriptionHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := prescription.ListRequest{
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
	if q.Status != "" {
		req.Status = &q.Status
	}

	v, err := resolveViewer(c, h.auth)
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	list, err := h.svc.List(c.Context(), v, req)
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	return ok(c, list)
}

// GET /prescriptions/:id
func (h *PrescriptionHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	v, err := resolveViewer(c, h.auth)
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	p, err := h.svc.GetByID(c.Context(), v, id)
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	return ok(c, p)
}

// POST /prescriptions
func (h *PrescriptionHandler) Create(c fiber.Ctx) error {
	prescribedBy, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID    string     `json:"patient_id"`
		MedicationID string     `json:"medication_id"`
		Dosage       string     `json:"dosage"`
		Frequency    string     `json:"frequency"`
		StartDate    time.Time  `json:"start_date"`
		EndDate      *time.Time `json:"end_date"`
		Notes        *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	medicationID, err := uuid.Parse(body.MedicationID)
	if err != nil {
		return badRequest(c, "invalid medication_id")
	}

	p, err := h.svc.Create(c.Context(), prescribedBy, prescription.CreateRequest{
		PatientID:    patientID,
		MedicationID: medicationID,
		Dosage:       body.Dosage,
		Frequency:    body.Frequency,
		StartDate:    body.StartDate,
		EndDate:      body.EndDate,
		Notes:        body.Notes,
	})
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	return created(c, p)
}

// PATCH /prescriptions/:id
func (h *PrescriptionHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	var body struct {
		Dosage    *string    `json:"dosage"`
		Frequency *string    `json:"frequency"`
		EndDate   *time.Time `json:"end_date"`
		Notes     *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), id, prescription.UpdateRequest{
		Dosage:    body.Dosage,
		Frequency: body.Frequency,
		EndDate:   body.EndDate,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapPrescriptionError(c, err)
	}

	return ok(c, p)
}

// POST /prescriptions/:id/complete
func (h *PrescriptionHandler) Complete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	if err := h.svc.Complete(c.Context(), id); err != nil {
		return mapPrescriptionError(c, err)
	}

	return noContent(c)
}

// POST /prescriptions/:id/discontinue
func (h *PrescriptionHandler) Discontinue(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	if err := h.svc.Discontinue(c.Context(), id); err != nil {
		return mapPrescriptionError(c, err)
	}

	return noContent(c)
}
