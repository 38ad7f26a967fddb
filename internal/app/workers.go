package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/vaenkat/health-ecosystem-hub/config"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entorder "github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
	entitem "github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	entmed "github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
	"github.com/vaenkat/health-ecosystem-hub/pkg/email"
)

// WorkerModule registers all NATS event workers. Events are advisory:
// a failed email never touches the transactional path that emitted it.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	NC     *nats.Conn
	DB     *repo.Client
	Mailer *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startLowStockWorker(p.NC, p.DB, p.Mailer, p.Cfg.Email.PharmacyAlertsTo)
			startOrderFulfilledWorker(p.NC, p.DB, p.Mailer, p.Cfg.Email.PharmacyAlertsTo)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// idFromSubject extracts the trailing UUID from subjects like
// portal.inventory.low_stock.<id>. The payload carries the same id.
func idFromSubject(subject string) (uuid.UUID, bool) {
	parts := strings.Split(subject, ".")
	if len(parts) == 0 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(parts[len(parts)-1])
	return id, err == nil
}

// ---------------------------------------------------------------------------
// low_stock_worker
// ---------------------------------------------------------------------------

func startLowStockWorker(nc *nats.Conn, db *repo.Client, mailer *email.Client, recipients []string) {
	_, err := nc.Subscribe("portal.inventory.low_stock.*", func(msg *nats.Msg) {
		itemID, valid := idFromSubject(msg.Subject)
		if !valid {
			return
		}

		ctx := context.Background()

		item, err := db.InventoryItem.Query().
			Where(entitem.ID(itemID)).
			Only(ctx)
		if err != nil {
			slog.Warn("low_stock_worker: inventory item not found", "id", itemID, "err", err)
			return
		}

		med, err := db.Medication.Query().
			Where(entmed.ID(item.MedicationID)).
			Only(ctx)
		if err != nil {
			slog.Warn("low_stock_worker: medication not found", "id", item.MedicationID, "err", err)
			return
		}

		data := email.LowStockEmailData{
			Recipients:     recipients,
			MedicationName: med.Name,
			Quantity:       item.Quantity,
			ReorderLevel:   item.ReorderLevel,
		}
		if item.BatchNumber != nil {
			data.BatchNumber = *item.BatchNumber
		}
		if item.Location != nil {
			data.Location = *item.Location
		}

		if err := mailer.Send(ctx, email.BuildLowStockEmail(data)); err != nil {
			slog.Warn("low_stock_worker: send alert failed", "item_id", itemID, "err", err)
		}
	})
	if err != nil {
		slog.Error("low_stock_worker: subscribe failed", "err", err)
	}
}

// ---------------------------------------------------------------------------
// order_fulfilled_worker
// ---------------------------------------------------------------------------

func startOrderFulfilledWorker(nc *nats.Conn, db *repo.Client, mailer *email.Client, recipients []string) {
	_, err := nc.Subscribe("portal.order.fulfilled.*", func(msg *nats.Msg) {
		orderID, valid := idFromSubject(msg.Subject)
		if !valid {
			return
		}

		ctx := context.Background()

		o, err := db.HospitalOrder.Query().
			Where(entorder.ID(orderID)).
			Only(ctx)
		if err != nil {
			slog.Warn("order_fulfilled_worker: order not found", "id", orderID, "err", err)
			return
		}

		med, err := db.Medication.Query().
			Where(entmed.ID(o.MedicationID)).
			Only(ctx)
		if err != nil {
			slog.Warn("order_fulfilled_worker: medication not found", "id", o.MedicationID, "err", err)
			return
		}

		fulfilledAt := time.Now()
		if o.FulfilledAt != nil {
			fulfilledAt = *o.FulfilledAt
		}

		if err := mailer.Send(ctx, email.BuildOrderFulfilledEmail(email.OrderFulfilledEmailData{
			Recipients:     recipients,
			OrderID:        o.ID.String(),
			MedicationName: med.Name,
			Quantity:       o.Quantity,
			FulfilledAt:    fulfilledAt,
		})); err != nil {
			slog.Warn("order_fulfilled_worker: send notice failed", "order_id", orderID, "err", err)
		}
	})
	if err != nil {
		slog.Error("order_fulfilled_worker: subscribe failed", "err", err)
	}
}
