package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/inventory"
)

type InventoryHandler struct {
	svc inventory.Service
}

func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func mapInventoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, inventory.ErrMedicationNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, inventory.ErrAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, inventory.ErrInvalidQuantity):
		return unprocessable(c, err.Error())
	case errors.Is(err, inventory.ErrInsufficientStock):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /inventory
func (h *InventoryHandler) List(c fiber.Ctx) error {
	var q struct {
		LowStock     bool `query:"low_stock"`
		ExpiringDays int  `query:"expiring_days"`
		Page         int  `query:"page"`
		PerPage      int  `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	items, err := h.svc.List(c.Context(), inventory.ListRequest{
		LowStockOnly: q.LowStock,
		ExpiringDays: q.ExpiringDays,
		Page:         q.Page,
		PerPage:      q.PerPage,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, items)
}

// GET /inventory/:id
func (h *InventoryHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid inventory item id")
	}

	item, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, item)
}

// GET /inventory/medication/:medicationId
func (h *InventoryHandler) GetByMedication(c fiber.Ctx) error {
	medicationID, err := uuid.Parse(c.Params("medicationId"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	item, err := h.svc.GetByMedication(c.Context(), medicationID)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, item)
}

// POST /inventory
func (h *InventoryHandler) Create(c fiber.Ctx) error {
	var body struct {
		MedicationID string     `json:"medication_id"`
		Quantity     int        `json:"quantity"`
		ReorderLevel *int       `json:"reorder_level"`
		UnitPrice    *float64   `json:"unit_price"`
		ExpiryDate   *time.Time `json:"expiry_date"`
		BatchNumber  *string    `json:"batch_number"`
		Location     *string    `json:"location"`
		Supplier     *string    `json:"supplier"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	medicationID, err := uuid.Parse(body.MedicationID)
	if err != nil {
		return badRequest(c, "invalid medication_id")
	}

	item, err := h.svc.Create(c.Context(), inventory.CreateRequest{
		MedicationID: medicationID,
		Quantity:     body.Quantity,
		ReorderLevel: body.ReorderLevel,
		UnitPrice:    body.UnitPrice,
		ExpiryDate:   body.ExpiryDate,
		BatchNumber:  body.BatchNumber,
		Location:     body.Location,
		Supplier:     body.Supplier,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	return created(c, item)
}

// PATCH /inventory/:id
func (h *InventoryHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid inventory item id")
	}

	var body struct {
		ReorderLevel *int       `json:"reorder_level"`
		UnitPrice    *float64   `json:"unit_price"`
		ExpiryDate   *time.Time `json:"expiry_date"`
		BatchNumber  *string    `json:"batch_number"`
		Location     *string    `json:"location"`
		Supplier     *string    `json:"supplier"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.svc.Update(c.Context(), id, inventory.UpdateRequest{
		ReorderLevel: body.ReorderLevel,
		UnitPrice:    body.UnitPrice,
		ExpiryDate:   body.ExpiryDate,
		BatchNumber:  body.BatchNumber,
		Location:     body.Location,
		Supplier:     body.Supplier,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, item)
}

// POST /inventory/:id/adjust
func (h *InventoryHandler) Adjust(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid inventory item id")
	}

	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Delta == 0 {
		return badRequest(c, "delta must not be zero")
	}

	item, err := h.svc.Adjust(c.Context(), id, body.Delta)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, item)
}
