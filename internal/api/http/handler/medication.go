package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/medication"
)

type MedicationHandler struct {
	svc medication.Service
}

func NewMedicationHandler(svc medication.Service) *MedicationHandler {
	return &MedicationHandler{svc: svc}
}

func mapMedicationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, medication.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, medication.ErrNameRequired):
		return unprocessable(c, err.Error())
	case errors.Is(err, medication.ErrAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, medication.ErrInUse):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /medications
func (h *MedicationHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Search  string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.List(c.Context(), medication.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
	})
	if err != nil {
		return mapMedicationError(c, err)
	}

	return ok(c, fiber.Map{
		"medications": result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /medications/:id
func (h *MedicationHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	m, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapMedicationError(c, err)
	}

	return ok(c, m)
}

// POST /medications
func (h *MedicationHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name         string  `json:"name"`
		Description  *string `json:"description"`
		DosageForm   *string `json:"dosage_form"`
		Manufacturer *string `json:"manufacturer"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	m, err := h.svc.Create(c.Context(), medication.CreateRequest{
		Name:         body.Name,
		Description:  body.Description,
		DosageForm:   body.DosageForm,
		Manufacturer: body.Manufacturer,
	})
	if err != nil {
		return mapMedicationError(c, err)
	}

	return created(c, m)
}

// PATCH /medications/:id
func (h *MedicationHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	var body struct {
		Name         *string `json:"name"`
		Description  *string `json:"description"`
		DosageForm   *string `json:"dosage_form"`
		Manufacturer *string `json:"manufacturer"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	m, err := h.svc.Update(c.Context(), id, medication.UpdateRequest{
		Name:         body.Name,
		Description:  body.Description,
		DosageForm:   body.DosageForm,
		Manufacturer: body.Manufacturer,
	})
	if err != nil {
		return mapMedicationError(c, err)
	}

	return ok(c, m)
}

// DELETE /medications/:id
func (h *MedicationHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapMedicationError(c, err)
	}

	return noContent(c)
}
