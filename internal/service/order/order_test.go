package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/enttest"
	entorder "github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
)

// newTestClient opens an in-memory sqlite client with the schema applied.
// The DSN is derived from the test name so parallel tests never share rows.
func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared&_fk=1"
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

type fulfillFixture struct {
	client *repo.Client
	svc    *orderService
	medID  uuid.UUID
	itemID uuid.UUID
	order  *repo.HospitalOrder
	staff  uuid.UUID
}

// newFulfillFixture seeds one medication with a stock row and an approved
// order against it.
func newFulfillFixture(t *testing.T, stock, reorder, orderQty int) *fulfillFixture {
	t.Helper()
	ctx := context.Background()
	client := newTestClient(t)
	staff := uuid.New()

	med, err := client.Medication.Create().
		SetName("Amoxicillin 500mg").
		SetDosageForm("capsule").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed medication: %v", err)
	}
	item, err := client.InventoryItem.Create().
		SetMedicationID(med.ID).
		SetQuantity(stock).
		SetReorderLevel(reorder).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
	o, err := client.HospitalOrder.Create().
		SetMedicationID(med.ID).
		SetOrderedBy(staff).
		SetQuantity(orderQty).
		SetStatus(entorder.StatusApproved).
		SetApprovedBy(staff).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}

	return &fulfillFixture{
		client: client,
		svc:    New(client, nil).(*orderService),
		medID:  med.ID,
		itemID: item.ID,
		order:  o,
		staff:  staff,
	}
}

func (f *fulfillFixture) stockLevel(t *testing.T) int {
	t.Helper()
	item, err := f.client.InventoryItem.Get(context.Background(), f.itemID)
	if err != nil {
		t.Fatalf("reload inventory: %v", err)
	}
	return item.Quantity
}

func (f *fulfillFixture) orderStatus(t *testing.T) entorder.Status {
	t.Helper()
	o, err := f.client.HospitalOrder.Get(context.Background(), f.order.ID)
	if err != nil {
		t.Fatalf("reload order: %v", err)
	}
	return o.Status
}

func TestFulfill(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements stock and marks fulfilled", func(t *testing.T) {
		f := newFulfillFixture(t, 100, 10, 30)
		if err := f.svc.Fulfill(ctx, f.staff, f.order.ID); err != nil {
			t.Fatalf("Fulfill() error = %v", err)
		}

		if got := f.stockLevel(t); got != 70 {
			t.Errorf("stock after fulfill = %d, want 70", got)
		}
		o, err := f.client.HospitalOrder.Get(ctx, f.order.ID)
		if err != nil {
			t.Fatalf("reload order: %v", err)
		}
		if o.Status != entorder.StatusFulfilled {
			t.Errorf("status = %s, want fulfilled", o.Status)
		}
		if o.FulfilledAt == nil {
			t.Error("fulfilled_at not set")
		}
		if o.FulfilledBy == nil || *o.FulfilledBy != f.staff {
			t.Errorf("fulfilled_by = %v, want %s", o.FulfilledBy, f.staff)
		}
	})

	t.Run("insufficient stock leaves both rows unchanged", func(t *testing.T) {
		f := newFulfillFixture(t, 20, 10, 30)
		err := f.svc.Fulfill(ctx, f.staff, f.order.ID)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("Fulfill() error = %v, want ErrInsufficientStock", err)
		}

		if got := f.stockLevel(t); got != 20 {
			t.Errorf("stock changed on failed fulfill: %d, want 20", got)
		}
		if got := f.orderStatus(t); got != entorder.StatusApproved {
			t.Errorf("order status changed on failed fulfill: %s, want approved", got)
		}
	})

	t.Run("missing inventory row", func(t *testing.T) {
		f := newFulfillFixture(t, 50, 10, 5)
		if err := f.client.InventoryItem.DeleteOneID(f.itemID).Exec(ctx); err != nil {
			t.Fatalf("delete inventory: %v", err)
		}

		if err := f.svc.Fulfill(ctx, f.staff, f.order.ID); !errors.Is(err, ErrNoInventory) {
			t.Fatalf("Fulfill() error = %v, want ErrNoInventory", err)
		}
		if got := f.orderStatus(t); got != entorder.StatusApproved {
			t.Errorf("order status = %s, want approved", got)
		}
	})

	t.Run("second fulfill conflicts and restores stock", func(t *testing.T) {
		f := newFulfillFixture(t, 100, 10, 30)
		if err := f.svc.Fulfill(ctx, f.staff, f.order.ID); err != nil {
			t.Fatalf("first Fulfill() error = %v", err)
		}

		// The guarded status flip fails once the order left approved; the
		// rollback must also undo the second decrement.
		err := f.svc.Fulfill(ctx, f.staff, f.order.ID)
		if !errors.Is(err, ErrInvalidTransition) && !errors.Is(err, ErrStaleTransition) {
			t.Fatalf("second Fulfill() error = %v, want a transition conflict", err)
		}
		if got := f.stockLevel(t); got != 70 {
			t.Errorf("stock after refused refulfill = %d, want 70", got)
		}
	})

	t.Run("stale status guard under a racing writer", func(t *testing.T) {
		f := newFulfillFixture(t, 100, 10, 30)

		// Flip the row behind the service's back after its pre-check read
		// would have seen approved. The conditional update must hit zero
		// rows and the transaction must roll the decrement back.
		if err := f.client.HospitalOrder.UpdateOneID(f.order.ID).
			SetStatus(entorder.StatusCancelled).
			Exec(ctx); err != nil {
			t.Fatalf("force cancel: %v", err)
		}

		tx, err := f.client.Tx(ctx)
		if err != nil {
			t.Fatalf("begin tx: %v", err)
		}
		defer tx.Rollback()
		n, err := tx.HospitalOrder.Update().
			Where(entorder.ID(f.order.ID), entorder.StatusEQ(entorder.StatusApproved)).
			SetStatus(entorder.StatusFulfilled).
			Save(ctx)
		if err != nil {
			t.Fatalf("conditional update: %v", err)
		}
		if n != 0 {
			t.Errorf("conditional update matched %d rows on a cancelled order, want 0", n)
		}
	})

	t.Run("pending order cannot be fulfilled", func(t *testing.T) {
		f := newFulfillFixture(t, 100, 10, 30)
		if err := f.client.HospitalOrder.UpdateOneID(f.order.ID).
			SetStatus(entorder.StatusPending).
			Exec(ctx); err != nil {
			t.Fatalf("reset to pending: %v", err)
		}

		if err := f.svc.Fulfill(ctx, f.staff, f.order.ID); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("Fulfill() on pending = %v, want ErrInvalidTransition", err)
		}
		if got := f.stockLevel(t); got != 100 {
			t.Errorf("stock = %d, want 100", got)
		}
	})
}

func TestLowStockAfterFulfill(t *testing.T) {
	ctx := context.Background()

	t.Run("crossing the reorder level flags low stock", func(t *testing.T) {
		f := newFulfillFixture(t, 40, 15, 30)
		if err := f.svc.Fulfill(ctx, f.staff, f.order.ID); err != nil {
			t.Fatalf("Fulfill() error = %v", err)
		}

		item, low := f.svc.lowStock(ctx, f.medID)
		if !low {
			t.Fatal("expected low-stock flag after depleting below reorder level")
		}
		if item.ID != f.itemID {
			t.Errorf("low-stock item = %s, want %s", item.ID, f.itemID)
		}
		if item.Quantity != 10 {
			t.Errorf("quantity = %d, want 10", item.Quantity)
		}
	})

	t.Run("healthy stock stays quiet", func(t *testing.T) {
		f := newFulfillFixture(t, 100, 10, 30)
		if err := f.svc.Fulfill(ctx, f.staff, f.order.ID); err != nil {
			t.Fatalf("Fulfill() error = %v", err)
		}

		if _, low := f.svc.lowStock(ctx, f.medID); low {
			t.Error("low-stock flag raised at 70 units against a reorder level of 10")
		}
	})

	t.Run("missing row never flags", func(t *testing.T) {
		f := newFulfillFixture(t, 100, 10, 30)
		if _, low := f.svc.lowStock(ctx, uuid.New()); low {
			t.Error("low-stock flag raised for an unknown medication")
		}
	})
}
