package prescription

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entmed "github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
	entpatient "github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
	entrx "github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/viewer"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	PatientID *uuid.UUID
	Status    *string
	Page      int
	PerPage   int
}

type CreateRequest struct {
	PatientID    uuid.UUID
	MedicationID uuid.UUID
	Dosage       string
	Frequency    string
	StartDate    time.Time
	EndDate      *time.Time
	Notes        *string
}

type UpdateRequest struct {
	Dosage    *string
	Frequency *string
	EndDate   *time.Time
	Notes     *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create records a prescription. prescribedBy is the authenticated
	// staff member's user id, taken from token claims by the handler.
	Create(ctx context.Context, prescribedBy uuid.UUID, req CreateRequest) (*repo.Prescription, error)

	GetByID(ctx context.Context, v viewer.Viewer, id uuid.UUID) (*repo.Prescription, error)

	// List scopes results for non-staff viewers to their own patient
	// record; a filter naming another patient is denied.
	List(ctx context.Context, v viewer.Viewer, req ListRequest) ([]*repo.Prescription, error)

	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Prescription, error)

	// Complete and Discontinue are the only legal transitions out of
	// active. Both run as conditional updates: a stale status fails
	// with ErrStaleTransition rather than overwriting.
	Complete(ctx context.Context, id uuid.UUID) error
	Discontinue(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type prescriptionService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &prescriptionService{db: db}
}

func (s *prescriptionService) Create(ctx context.Context, prescribedBy uuid.UUID, req CreateRequest) (*repo.Prescription, error) {
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDates
	}

	patientExists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !patientExists {
		return nil, ErrPatientNotFound
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

	c := s.db.Prescription.Create().
		SetPatientID(req.PatientID).
		SetMedicationID(req.MedicationID).
		SetPrescribedBy(prescribedBy).
		SetDosage(req.Dosage).
		SetFrequency(req.Frequency).
		SetStartDate(req.StartDate)

	if req.EndDate != nil {
		c = c.SetNillableEndDate(req.EndDate)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	rx, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}
	return rx, nil
}

func (s *prescriptionService) GetByID(ctx context.Context, v viewer.Viewer, id uuid.UUID) (*repo.Prescription, error) {
	rx, err := s.db.Prescription.Query().
		Where(entrx.ID(id)).
		WithMedication().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}

	if !v.Staff {
		owns, err := s.ownsPatient(ctx, v.UserID, rx.PatientID)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, ErrAccessDenied
		}
	}
	return rx, nil
}

func (s *prescriptionService) List(ctx context.Context, v viewer.Viewer, req ListRequest) ([]*repo.Prescription, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Prescription.Query()

	if !v.Staff {
		ownID, err := s.ownPatientID(ctx, v.UserID)
		if err != nil {
			return nil, err
		}
		if req.PatientID != nil && *req.PatientID != ownID {
			return nil, ErrAccessDenied
		}
		q = q.Where(entrx.PatientID(ownID))
	} else if req.PatientID != nil {
		q = q.Where(entrx.PatientID(*req.PatientID))
	}

	if req.Status != nil {
		q = q.Where(entrx.StatusEQ(entrx.Status(*req.Status)))
	}

	return q.
		WithMedication().
		Order(entrx.ByStartDate(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
}

func (s *prescriptionService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Prescription, error) {
	rx, err := s.db.Prescription.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}

	u := s.db.Prescription.UpdateOne(rx)
	if req.Dosage != nil {
		u = u.SetDosage(*req.Dosage)
	}
	if req.Frequency != nil {
		u = u.SetFrequency(*req.Frequency)
	}
	if req.EndDate != nil {
		if req.EndDate.Before(rx.StartDate) {
			return nil, ErrInvalidDates
		}
		u = u.SetNillableEndDate(req.EndDate)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}

	return u.Save(ctx)
}

func (s *prescriptionService) Complete(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, entrx.StatusCompleted)
}

func (s *prescriptionService) Discontinue(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, entrx.StatusDiscontinued)
}

// transition applies from→to as a conditional update. Zero affected
// rows with an existing record means the stored status changed since
// the caller's read.
func (s *prescriptionService) transition(ctx context.Context, id uuid.UUID, to entrx.Status) error {
	rx, err := s.db.Prescription.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get prescription: %w", err)
	}

	if !CanTransition(rx.Status, to) {
		return ErrInvalidTransition
	}

	n, err := s.db.Prescription.Update().
		Where(entrx.ID(id), entrx.StatusEQ(rx.Status)).
		SetStatus(to).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("transition prescription: %w", err)
	}
	if n == 0 {
		return ErrStaleTransition
	}
	return nil
}

func (s *prescriptionService) ownsPatient(ctx context.Context, userID, patientID uuid.UUID) (bool, error) {
	owns, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.UserID(userID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check patient ownership: %w", err)
	}
	return owns, nil
}

func (s *prescriptionService) ownPatientID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return uuid.Nil, ErrPatientNotFound
		}
		return uuid.Nil, fmt.Errorf("resolve own patient: %w", err)
	}
	return p.ID, nil
}
