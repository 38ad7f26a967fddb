package dashboard

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entappt "github.com/vaenkat/health-ecosystem-hub/internal/repo/appointment"
	entorder "github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
	entitem "github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	entlab "github.com/vaenkat/health-ecosystem-hub/internal/repo/labreport"
	entpatient "github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
	entrx "github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
)

// expiringSoonDays is the window used for the pharmacy expiring-batch count.
const expiringSoonDays = 30

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PatientStats struct {
	UpcomingAppointments int `json:"upcoming_appointments"`
	ActivePrescriptions  int `json:"active_prescriptions"`
	PendingLabReports    int `json:"pending_lab_reports"`
}

type HospitalStats struct {
	AppointmentsToday int `json:"appointments_today"`
	PendingOrders     int `json:"pending_orders"`
	PendingLabReports int `json:"pending_lab_reports"`
	TotalPatients     int `json:"total_patients"`
}

type PharmacyStats struct {
	LowStockItems   int `json:"low_stock_items"`
	OpenOrders      int `json:"open_orders"` // pending + approved
	ExpiringBatches int `json:"expiring_batches"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// PatientStats aggregates over the caller's own patient record only.
	PatientStats(ctx context.Context, userID uuid.UUID) (*PatientStats, error)
	HospitalStats(ctx context.Context) (*HospitalStats, error)
	PharmacyStats(ctx context.Context) (*PharmacyStats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type dashboardService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &dashboardService{db: db}
}

func (s *dashboardService) PatientStats(ctx context.Context, userID uuid.UUID) (*PatientStats, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("resolve patient: %w", err)
	}

	now := time.Now()

	upcoming, err := s.db.Appointment.Query().
		Where(
			entappt.PatientID(p.ID),
			entappt.StatusEQ(entappt.StatusScheduled),
			entappt.AppointmentDateGTE(now),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	activeRx, err := s.db.Prescription.Query().
		Where(entrx.PatientID(p.ID), entrx.StatusEQ(entrx.StatusActive)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count prescriptions: %w", err)
	}

	pendingLabs, err := s.db.LabReport.Query().
		Where(entlab.PatientID(p.ID), entlab.StatusEQ(entlab.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count lab reports: %w", err)
	}

	return &PatientStats{
		UpcomingAppointments: upcoming,
		ActivePrescriptions:  activeRx,
		PendingLabReports:    pendingLabs,
	}, nil
}

func (s *dashboardService) HospitalStats(ctx context.Context) (*HospitalStats, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	apptsToday, err := s.db.Appointment.Query().
		Where(
			entappt.AppointmentDateGTE(dayStart),
			entappt.AppointmentDateLT(dayEnd),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	pendingOrders, err := s.db.HospitalOrder.Query().
		Where(entorder.StatusEQ(entorder.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	pendingLabs, err := s.db.LabReport.Query().
		Where(entlab.StatusEQ(entlab.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count lab reports: %w", err)
	}

	totalPatients, err := s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	return &HospitalStats{
		AppointmentsToday: apptsToday,
		PendingOrders:     pendingOrders,
		PendingLabReports: pendingLabs,
		TotalPatients:     totalPatients,
	}, nil
}

func (s *dashboardService) PharmacyStats(ctx context.Context) (*PharmacyStats, error) {
	lowStock, err := s.db.InventoryItem.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ColumnsLTE(sel.C(entitem.FieldQuantity), sel.C(entitem.FieldReorderLevel)))
		}).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count low stock: %w", err)
	}

	openOrders, err := s.db.HospitalOrder.Query().
		Where(entorder.StatusIn(entorder.StatusPending, entorder.StatusApproved)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count open orders: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, expiringSoonDays)
	expiring, err := s.db.InventoryItem.Query().
		Where(entitem.ExpiryDateNotNil(), entitem.ExpiryDateLTE(cutoff)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count expiring batches: %w", err)
	}

	return &PharmacyStats{
		LowStockItems:   lowStock,
		OpenOrders:      openOrders,
		ExpiringBatches: expiring,
	}, nil
}
