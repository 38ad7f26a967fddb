package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/order"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func mapOrderError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, order.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, order.ErrMedicationNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, order.ErrInvalidQuantity):
		return unprocessable(c, err.Error())
	case errors.Is(err, order.ErrInvalidUrgency):
		return unprocessable(c, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return unprocessable(c, err.Error())
	case errors.Is(err, order.ErrStaleTransition):
		return conflict(c, err.Error())
	case errors.Is(err, order.ErrNoInventory):
		return notFound(c, err.Error())
	case errors.Is(err, order.ErrInsufficientStock):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /orders
func (h *OrderHandler) List(c fiber.Ctx) error {
	var q struct {
		Status  string `query:"status"`
		Urgency string `query:"urgency"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := order.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.Urgency != "" {
		req.Urgency = &q.Urgency
	}

	orders, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapOrderError(c, err)
	}

	return ok(c, orders)
}

// GET /orders/:id
func (h *OrderHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	o, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapOrderError(c, err)
	}

	return ok(c, o)
}

// POST /orders
func (h *OrderHandler) Create(c fiber.Ctx) error {
	orderedBy, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		MedicationID string  `json:"medication_id"`
		Quantity     int     `json:"quantity"`
		Urgency      string  `json:"urgency"`
		Notes        *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	medicationID, err := uuid.Parse(body.MedicationID)
	if err != nil {
		return badRequest(c, "invalid medication_id")
	}

	o, err := h.svc.Create(c.Context(), orderedBy, order.CreateRequest{
		MedicationID: medicationID,
		Quantity:     body.Quantity,
		Urgency:      body.Urgency,
		Notes:        body.Notes,
	})
	if err != nil {
		return mapOrderError(c, err)
	}

	return created(c, o)
}

// POST /orders/:id/approve
func (h *OrderHandler) Approve(c fiber.Ctx) error {
	approvedBy, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	if err := h.svc.Approve(c.Context(), approvedBy, id); err != nil {
		return mapOrderError(c, err)
	}

	return noContent(c)
}

// POST /orders/:id/cancel
func (h *OrderHandler) Cancel(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	if err := h.svc.Cancel(c.Context(), id); err != nil {
		return mapOrderError(c, err)
	}

	return noContent(c)
}

// POST /orders/:id/fulfill
func (h *OrderHandler) Fulfill(c fiber.Ctx) error {
	fulfilledBy, valid := callerID(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	if err := h.svc.Fulfill(c.Context(), fulfilledBy, id); err != nil {
		return mapOrderError(c, err)
	}

	return noContent(c)
}
