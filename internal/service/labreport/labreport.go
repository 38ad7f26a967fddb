package labreport

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entlab "github.com/vaenkat/health-ecosystem-hub/internal/repo/labreport"
	entpatient "github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
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
	PatientID uuid.UUID
	TestName  string
	TestDate  time.Time
}

type CompleteRequest struct {
	Results map[string]any
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create orders a test. orderedBy is the authenticated staff
	// member's user id, taken from token claims by the handler.
	Create(ctx context.Context, orderedBy uuid.UUID, req CreateRequest) (*repo.LabReport, error)

	GetByID(ctx context.Context, v viewer.Viewer, id uuid.UUID) (*repo.LabReport, error)
	List(ctx context.Context, v viewer.Viewer, req ListRequest) ([]*repo.LabReport, error)

	// Complete attaches results and moves pending → completed.
	Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) error

	// Review moves completed → reviewed and records the reviewer.
	Review(ctx context.Context, reviewedBy uuid.UUID, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type labReportService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &labReportService{db: db}
}

func (s *labReportService) Create(ctx context.Context, orderedBy uuid.UUID, req CreateRequest) (*repo.LabReport, error) {
	patientExists, err := s.db.Patient.Query().
		Where(entpatient.ID(req.PatientID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !patientExists {
		return nil, ErrPatientNotFound
	}

	report, err := s.db.LabReport.Create().
		SetPatientID(req.PatientID).
		SetTestName(req.TestName).
		SetTestDate(req.TestDate).
		SetOrderedBy(orderedBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create lab report: %w", err)
	}
	return report, nil
}

func (s *labReportService) GetByID(ctx context.Context, v viewer.Viewer, id uuid.UUID) (*repo.LabReport, error) {
	report, err := s.db.LabReport.Query().
		Where(entlab.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get lab report: %w", err)
	}

	if !v.Staff {
		owns, err := s.ownsPatient(ctx, v.UserID, report.PatientID)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, ErrAccessDenied
		}
	}
	return report, nil
}

func (s *labReportService) List(ctx context.Context, v viewer.Viewer, req ListRequest) ([]*repo.LabReport, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.LabReport.Query()

	if !v.Staff {
		ownID, err := s.ownPatientID(ctx, v.UserID)
		if err != nil {
			return nil, err
		}
		if req.PatientID != nil && *req.PatientID != ownID {
			return nil, ErrAccessDenied
		}
		q = q.Where(entlab.PatientID(ownID))
	} else if req.PatientID != nil {
		q = q.Where(entlab.PatientID(*req.PatientID))
	}

	if req.Status != nil {
		q = q.Where(entlab.StatusEQ(entlab.Status(*req.Status)))
	}

	return q.
		Order(entlab.ByTestDate(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
}

func (s *labReportService) Complete(ctx context.Context, id uuid.UUID, req CompleteRequest) error {
	if len(req.Results) == 0 {
		return ErrResultsRequired
	}

	report, err := s.db.LabReport.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get lab report: %w", err)
	}

	if !CanTransition(report.Status, entlab.StatusCompleted) {
		return ErrInvalidTransition
	}

	n, err := s.db.LabReport.Update().
		Where(entlab.ID(id), entlab.StatusEQ(report.Status)).
		SetStatus(entlab.StatusCompleted).
		SetResults(req.Results).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete lab report: %w", err)
	}
	if n == 0 {
		return ErrStaleTransition
	}
	return nil
}

func (s *labReportService) Review(ctx context.Context, reviewedBy uuid.UUID, id uuid.UUID) error {
	report, err := s.db.LabReport.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get lab report: %w", err)
	}

	if !CanTransition(report.Status, entlab.StatusReviewed) {
		return ErrInvalidTransition
	}

	n, err := s.db.LabReport.Update().
		Where(entlab.ID(id), entlab.StatusEQ(report.Status)).
		SetStatus(entlab.StatusReviewed).
		SetReviewedBy(reviewedBy).
		SetReviewedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("review lab report: %w", err)
	}
	if n == 0 {
		return ErrStaleTransition
	}
	return nil
}

func (s *labReportService) ownsPatient(ctx context.Context, userID, patientID uuid.UUID) (bool, error) {
	owns, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.UserID(userID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check patient ownership: %w", err)
	}
	return owns, nil
}

func (s *labReportService) ownPatientID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
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
