package inventory

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entitem "github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	entmed "github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
)

// SubjectLowStock is the NATS subject prefix for low-stock events; the
// inventory item id is appended as the last token.
const SubjectLowStock = "portal.inventory.low_stock"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	LowStockOnly bool
	ExpiringDays int // >0: only items expiring within this many days
	Page         int
	PerPage      int
}

type CreateRequest struct {
	MedicationID uuid.UUID
	Quantity     int
	ReorderLevel *int
	UnitPrice    *float64
	ExpiryDate   *time.Time
	BatchNumber  *string
	Location     *string
	Supplier     *string
}

type UpdateRequest struct {
	ReorderLevel *int
	UnitPrice    *float64
	ExpiryDate   *time.Time
	BatchNumber  *string
	Location     *string
	Supplier     *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.InventoryItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.InventoryItem, error)
	GetByMedication(ctx context.Context, medicationID uuid.UUID) (*repo.InventoryItem, error)
	List(ctx context.Context, req ListRequest) ([]*repo.InventoryItem, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.InventoryItem, error)

	// Adjust changes the stock level by delta (restock > 0, issue < 0).
	// Decrements are conditional on sufficient stock: the row can never
	// go negative, concurrent issues serialize on the guard.
	Adjust(ctx context.Context, id uuid.UUID, delta int) (*repo.InventoryItem, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type inventoryService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &inventoryService{db: db, nc: nc}
}

func (s *inventoryService) Create(ctx context.Context, req CreateRequest) (*repo.InventoryItem, error) {
	if req.Quantity < 0 {
		return nil, ErrInvalidQuantity
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

	c := s.db.InventoryItem.Create().
		SetMedicationID(req.MedicationID).
		SetQuantity(req.Quantity)

	if req.ReorderLevel != nil {
		c = c.SetReorderLevel(*req.ReorderLevel)
	}
	if req.UnitPrice != nil {
		c = c.SetUnitPrice(*req.UnitPrice)
	}
	if req.ExpiryDate != nil {
		c = c.SetNillableExpiryDate(req.ExpiryDate)
	}
	if req.BatchNumber != nil {
		c = c.SetNillableBatchNumber(req.BatchNumber)
	}
	if req.Location != nil {
		c = c.SetNillableLocation(req.Location)
	}
	if req.Supplier != nil {
		c = c.SetNillableSupplier(req.Supplier)
	}

	item, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) GetByID(ctx context.Context, id uuid.UUID) (*repo.InventoryItem, error) {
	item, err := s.db.InventoryItem.Query().
		Where(entitem.ID(id)).
		WithMedication().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) GetByMedication(ctx context.Context, medicationID uuid.UUID) (*repo.InventoryItem, error) {
	item, err := s.db.InventoryItem.Query().
		Where(entitem.MedicationID(medicationID)).
		WithMedication().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) List(ctx context.Context, req ListRequest) ([]*repo.InventoryItem, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.InventoryItem.Query()

	if req.LowStockOnly {
		q = q.Where(func(sel *sql.Selector) {
			sel.Where(sql.ColumnsLTE(sel.C(entitem.FieldQuantity), sel.C(entitem.FieldReorderLevel)))
		})
	}
	if req.ExpiringDays > 0 {
		cutoff := time.Now().AddDate(0, 0, req.ExpiringDays)
		q = q.Where(entitem.ExpiryDateNotNil(), entitem.ExpiryDateLTE(cutoff))
	}

	return q.
		WithMedication().
		Order(entitem.ByQuantity(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
}

func (s *inventoryService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.InventoryItem, error) {
	item, err := s.db.InventoryItem.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}

	u := s.db.InventoryItem.UpdateOne(item)
	if req.ReorderLevel != nil {
		u = u.SetReorderLevel(*req.ReorderLevel)
	}
	if req.UnitPrice != nil {
		u = u.SetUnitPrice(*req.UnitPrice)
	}
	if req.ExpiryDate != nil {
		u = u.SetNillableExpiryDate(req.ExpiryDate)
	}
	if req.BatchNumber != nil {
		u = u.SetNillableBatchNumber(req.BatchNumber)
	}
	if req.Location != nil {
		u = u.SetNillableLocation(req.Location)
	}
	if req.Supplier != nil {
		u = u.SetNillableSupplier(req.Supplier)
	}

	return u.Save(ctx)
}

func (s *inventoryService) Adjust(ctx context.Context, id uuid.UUID, delta int) (*repo.InventoryItem, error) {
	if delta < 0 {
		// Conditional decrement: only applies while stock covers it.
		n, err := s.db.InventoryItem.Update().
			Where(entitem.ID(id), entitem.QuantityGTE(-delta)).
			AddQuantity(delta).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("decrement stock: %w", err)
		}
		if n == 0 {
			exists, err := s.db.InventoryItem.Query().Where(entitem.ID(id)).Exist(ctx)
			if err != nil {
				return nil, fmt.Errorf("check inventory item: %w", err)
			}
			if !exists {
				return nil, ErrNotFound
			}
			return nil, ErrInsufficientStock
		}
	} else if delta > 0 {
		n, err := s.db.InventoryItem.Update().
			Where(entitem.ID(id)).
			AddQuantity(delta).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("increment stock: %w", err)
		}
		if n == 0 {
			return nil, ErrNotFound
		}
	}

	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishLowStockIfNeeded(item)
	return item, nil
}

// publishLowStockIfNeeded emits an advisory event when the item sits at
// or below its reorder level. Fire-and-forget: stock math never depends
// on the broker.
func (s *inventoryService) publishLowStockIfNeeded(item *repo.InventoryItem) {
	if s.nc == nil || item.Quantity > item.ReorderLevel {
		return
	}
	subject := fmt.Sprintf("%s.%s", SubjectLowStock, item.ID)
	_ = s.nc.Publish(subject, []byte(item.ID.String()))
}
