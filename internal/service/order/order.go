package order

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entorder "github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
	entitem "github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	entmed "github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/inventory"
)

// NATS subject prefixes for order events; the order id is appended as
// the last token. Advisory only, never part of the transactional path.
const (
	SubjectOrderCreated   = "portal.order.created"
	SubjectOrderFulfilled = "portal.order.fulfilled"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Status  *string
	Urgency *string
	Page    int
	PerPage int
}

type CreateRequest struct {
	MedicationID uuid.UUID
	Quantity     int
	Urgency      string // normal | urgent | emergency; empty means normal
	Notes        *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create raises a restock order. orderedBy is the authenticated
	// staff member's user id, taken from token claims by the handler.
	Create(ctx context.Context, orderedBy uuid.UUID, req CreateRequest) (*repo.HospitalOrder, error)

	GetByID(ctx context.Context, id uuid.UUID) (*repo.HospitalOrder, error)
	List(ctx context.Context, req ListRequest) ([]*repo.HospitalOrder, error)

	Approve(ctx context.Context, approvedBy uuid.UUID, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error

	// Fulfill decrements pharmacy stock and marks the order fulfilled in
	// one transaction: both effects commit together or not at all.
	Fulfill(ctx context.Context, fulfilledBy uuid.UUID, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type orderService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &orderService{db: db, nc: nc}
}

func (s *orderService) Create(ctx context.Context, orderedBy uuid.UUID, req CreateRequest) (*repo.HospitalOrder, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if req.Urgency == "" {
		req.Urgency = string(entorder.UrgencyNormal)
	}
	switch entorder.Urgency(req.Urgency) {
	case entorder.UrgencyNormal, entorder.UrgencyUrgent, entorder.UrgencyEmergency:
	default:
		return nil, ErrInvalidUrgency
	}

	medExists, err := s.db.Medication.Query().
		Where(entmed.ID(req.MedicationID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check medication: %w", err)
	}
	if !medExists {
		return nil, ErrMedicationNotFound
	}

	c := s.db.HospitalOrder.Create().
		SetMedicationID(req.MedicationID).
		SetOrderedBy(orderedBy).
		SetQuantity(req.Quantity).
		SetUrgency(entorder.Urgency(req.Urgency))
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	o, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publish(SubjectOrderCreated, o.ID)
	return o, nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*repo.HospitalOrder, error) {
	o, err := s.db.HospitalOrder.Query().
		Where(entorder.ID(id)).
		WithMedication().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (s *orderService) List(ctx context.Context, req ListRequest) ([]*repo.HospitalOrder, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.HospitalOrder.Query()
	if req.Status != nil {
		q = q.Where(entorder.StatusEQ(entorder.Status(*req.Status)))
	}
	if req.Urgency != nil {
		q = q.Where(entorder.UrgencyEQ(entorder.Urgency(*req.Urgency)))
	}

	return q.
		WithMedication().
		Order(entorder.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
}

func (s *orderService) Approve(ctx context.Context, approvedBy uuid.UUID, id uuid.UUID) error {
	o, err := s.db.HospitalOrder.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get order: %w", err)
	}

	if !CanTransition(o.Status, entorder.StatusApproved) {
		return ErrInvalidTransition
	}

	n, err := s.db.HospitalOrder.Update().
		Where(entorder.ID(id), entorder.StatusEQ(o.Status)).
		SetStatus(entorder.StatusApproved).
		SetApprovedBy(approvedBy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("approve order: %w", err)
	}
	if n == 0 {
		return ErrStaleTransition
	}
	return nil
}

func (s *orderService) Cancel(ctx context.Context, id uuid.UUID) error {
	o, err := s.db.HospitalOrder.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get order: %w", err)
	}

	if !CanTransition(o.Status, entorder.StatusCancelled) {
		return ErrInvalidTransition
	}

	n, err := s.db.HospitalOrder.Update().
		Where(entorder.ID(id), entorder.StatusEQ(o.Status)).
		SetStatus(entorder.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	if n == 0 {
		return ErrStaleTransition
	}
	return nil
}

// Fulfill runs both effects inside one transaction:
//
//  1. conditionally decrement the medication's inventory row, guarded
//     by quantity >= ordered amount (stock never goes negative);
//  2. conditionally move the order approved → fulfilled.
//
// A failed guard rolls the whole transaction back, so stock is never
// decremented for an order that does not reach fulfilled, and an order
// is never fulfilled without the matching decrement.
func (s *orderService) Fulfill(ctx context.Context, fulfilledBy uuid.UUID, id uuid.UUID) error {
	o, err := s.db.HospitalOrder.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get order: %w", err)
	}

	if !CanTransition(o.Status, entorder.StatusFulfilled) {
		return ErrInvalidTransition
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var decremented int
	decremented, err = tx.InventoryItem.Update().
		Where(
			entitem.MedicationID(o.MedicationID),
			entitem.QuantityGTE(o.Quantity),
		).
		AddQuantity(-o.Quantity).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if decremented == 0 {
		var exists bool
		exists, err = tx.InventoryItem.Query().
			Where(entitem.MedicationID(o.MedicationID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check inventory: %w", err)
		}
		if !exists {
			err = ErrNoInventory
		} else {
			err = ErrInsufficientStock
		}
		return err
	}

	var updated int
	updated, err = tx.HospitalOrder.Update().
		Where(entorder.ID(id), entorder.StatusEQ(entorder.StatusApproved)).
		SetStatus(entorder.StatusFulfilled).
		SetFulfilledBy(fulfilledBy).
		SetFulfilledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark fulfilled: %w", err)
	}
	if updated == 0 {
		err = ErrStaleTransition
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.publish(SubjectOrderFulfilled, id)
	if item, low := s.lowStock(ctx, o.MedicationID); low {
		s.publish(inventory.SubjectLowStock, item.ID)
	}
	return nil
}

// lowStock re-reads the medication's inventory row after a decrement.
// Fulfillment is the main depletion path, so the low-stock advisory has
// to fire from here too, not only from manual adjustments.
func (s *orderService) lowStock(ctx context.Context, medicationID uuid.UUID) (*repo.InventoryItem, bool) {
	item, err := s.db.InventoryItem.Query().
		Where(entitem.MedicationID(medicationID)).
		Only(ctx)
	if err != nil {
		return nil, false
	}
	return item, item.Quantity <= item.ReorderLevel
}

func (s *orderService) publish(prefix string, id uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("%s.%s", prefix, id)
	_ = s.nc.Publish(subject, []byte(id.String()))
}
