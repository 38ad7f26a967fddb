package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/labreport"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/viewer"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

type LabReportHandler struct {
	svc  labreport.Service
	auth authorize.IAuthorization
}

func NewLabReportHandler(svc labreport.Service, auth authorize.IAuthorization) *LabReportHandler {
	return &LabReportHandler{svc: svc, auth: auth}
}

func mapLabReportError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, viewer.ErrUnauthenticated):
		return unauthorized(c)
	case errors.Is(err, labreport.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, labreport.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, labreport.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, labreport.ErrInvalidTransition):
		return unprocessable(c, err.Error())
	case errors.Is(err, labreport.ErrStaleTransition):
		return conflict(c, err.Error())
	case errors.Is(err, labreport.ErrResultsRequired):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /lab-reports
func (h *LabReportHandler) List(c fiber.Ctx) error {
	var q struct {
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := labreport.ListRequest{
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
		return mapLabReportError(c, err)
	}

	reports, err := h.svc.List(c.Context(), v, req)
	if err != nil {
		return mapLabReportError(c, err)
	}

	return ok(c, reports)
}

// GET /lab-reports/:id
func (h *LabReportHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid lab report id")
	}

	v, err := resolveViewer(c, h.auth)
	if err != nil {
		return mapLabReportError(c, err)
	}

	r, err := h.svc.GetByID(c.Context(), v, id)
	if err != nil {
		return mapLabReportError(c, err)
	}

	return ok(c, r)
}

// POST /lab-reports
func (h *LabReportHandler) Create(c fiber.Ctx) error {
	orderedBy, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID string    `json:"patient_id"`
		TestName  string    `json:"test_name"`
		TestDate  time.Time `json:"test_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	r, err := h.svc.Create(c.Context(), orderedBy, labreport.CreateRequest{
		PatientID: patientID,
		TestName:  body.TestName,
		TestDate:  body.TestDate,
	})
	if err != nil {
		return mapLabReportError(c, err)
	}

	return created(c, r)
}

// POST /lab-reports/:id/complete
func (h *LabReportHandler) Complete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid lab report id")
	}

	var body struct {
		Results map[string]any `json:"results"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Complete(c.Context(), id, labreport.CompleteRequest{
		Results: body.Results,
	}); err != nil {
		return mapLabReportError(c, err)
	}

	return noContent(c)
}

// POST /lab-reports/:id/review
func (h *LabReportHandler) Review(c fiber.Ctx) error {
	reviewedBy, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid lab report id")
	}

	if err := h.svc.Review(c.Context(), reviewedBy, id); err != nil {
		return mapLabReportError(c, err)
	}

	return noContent(c)
}
