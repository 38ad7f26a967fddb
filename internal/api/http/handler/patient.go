package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/patient"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/viewer"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

type PatientHandler struct {
	svc  patient.Service
	auth authorize.IAuthorization
}

func NewPatientHandler(svc patient.Service, auth authorize.IAuthorization) *PatientHandler {
	return &PatientHandler{svc: svc, auth: auth}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, viewer.ErrUnauthenticated):
		return unauthorized(c)
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrInvalidBloodType):
		return unprocessable(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// patientBody is shared by Create and Update: every clinical field is
// optional at the wire level, validation happens in the service.
type patientBody struct {
	DateOfBirth       *time.Time `json:"date_of_birth"`
	BloodType         *string    `json:"blood_type"`
	Allergies         []string   `json:"allergies"`
	EmergencyContact  *string    `json:"emergency_contact"`
	EmergencyPhone    *string    `json:"emergency_phone"`
	MedicalHistory    []string   `json:"medical_history"`
	ChronicConditions []string   `json:"chronic_conditions"`
	InsuranceNumber   *string    `json:"insurance_number"`
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.List(c.Context(), patient.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		UserID string `json:"user_id"`
		patientBody
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.UserID == "" {
		return badRequest(c, "user_id is required")
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	p, err := h.svc.Create(c.Context(), patient.CreateRequest{
		UserID:            userID,
		DateOfBirth:       body.DateOfBirth,
		BloodType:         body.BloodType,
		Allergies:         body.Allergies,
		EmergencyContact:  body.EmergencyContact,
		EmergencyPhone:    body.EmergencyPhone,
		MedicalHistory:    body.MedicalHistory,
		ChronicConditions: body.ChronicConditions,
		InsuranceNumber:   body.InsuranceNumber,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// GET /patients/me
func (h *PatientHandler) GetSelf(c fiber.Ctx) error {
	v, err := resolveViewer(c, h.auth)
	if err != nil {
		return mapPatientError(c, err)
	}

	p, err := h.svc.GetSelf(c.Context(), v)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	v, err := resolveViewer(c, h.auth)
	if err != nil {
		return mapPatientError(c, err)
	}

	p, err := h.svc.GetByID(c.Context(), v, patientID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), patientID, patient.UpdateRequest{
		DateOfBirth:       body.DateOfBirth,
		BloodType:         body.BloodType,
		Allergies:         body.Allergies,
		EmergencyContact:  body.EmergencyContact,
		EmergencyPhone:    body.EmergencyPhone,
		MedicalHistory:    body.MedicalHistory,
		ChronicConditions: body.ChronicConditions,
		InsuranceNumber:   body.InsuranceNumber,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}
