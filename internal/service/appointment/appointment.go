package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entappt "github.com/vaenkat/health-ecosystem-hub/internal/repo/appointment"
	entpatient "github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/viewer"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	PatientID *uuid.UUID
	StaffID   *uuid.UUID
	Status    *string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}

type CreateRequest struct {
	PatientID       uuid.UUID
	StaffID         uuid.UUID
	AppointmentDate time.Time
	Department      string
	Reason          *string
	Notes           *string
}

type UpdateRequest struct {
	AppointmentDate *time.Time
	Department      *string
	Reason          *string
	Notes           *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Appointment, error)
	GetByID(ctx context.Context, v viewer.Viewer, id uuid.UUID) (*repo.Appointment, error)
	List(ctx context.Context, v viewer.Viewer, req ListRequest) ([]*repo.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Appointment, error)

	// Terminal transitions out of scheduled, each a conditional update.
	Complete(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
	MarkNoShow(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &appointmentService{db: db}
}

func (s *appointmentService) Create(ctx context.Context, req CreateRequest) (*repo.Appointment, error) {
	if req.AppointmentDate.Before(time.Now()) {
		return nil, ErrDateInPast
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

	c := s.db.Appointment.Create().
		SetPatientID(req.PatientID).
		SetStaffID(req.StaffID).
		SetAppointmentDate(req.AppointmentDate).
		SetDepartment(req.Department)

	if req.Reason != nil {
		c = c.SetNillableReason(req.Reason)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) GetByID(ctx context.Context, v viewer.Viewer, id uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	if !v.Staff {
		owns, err := s.ownsPatient(ctx, v.UserID, appt.PatientID)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, ErrAccessDenied
		}
	}
	return appt, nil
}

func (s *appointmentService) List(ctx context.Context, v viewer.Viewer, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if !v.Staff {
		ownID, err := s.ownPatientID(ctx, v.UserID)
		if err != nil {
			return nil, err
		}
		if req.PatientID != nil && *req.PatientID != ownID {
			return nil, ErrAccessDenied
		}
		q = q.Where(entappt.PatientID(ownID))
	} else if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}

	if req.StaffID != nil {
		q = q.Where(entappt.StaffID(*req.StaffID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.AppointmentDateGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.AppointmentDateLT(*req.To))
	}

	return q.
		Order(entappt.ByAppointmentDate(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
}

func (s *appointmentService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	u := s.db.Appointment.UpdateOne(appt)
	if req.AppointmentDate != nil {
		if req.AppointmentDate.Before(time.Now()) {
			return nil, ErrDateInPast
		}
		u = u.SetAppointmentDate(*req.AppointmentDate)
	}
	if req.Department != nil {
		u = u.SetDepartment(*req.Department)
	}
	if req.Reason != nil {
		u = u.SetNillableReason(req.Reason)
	}
	if req.Notes != nil {
		u = u.SetNillableNotes(req.Notes)
	}

	return u.Save(ctx)
}

func (s *appointmentService) Complete(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, entappt.StatusCompleted)
}

func (s *appointmentService) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, entappt.StatusCancelled)
}

func (s *appointmentService) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, entappt.StatusNoShow)
}

func (s *appointmentService) transition(ctx context.Context, id uuid.UUID, to entappt.Status) error {
	appt, err := s.db.Appointment.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get appointment: %w", err)
	}

	if !CanTransition(appt.Status, to) {
		return ErrInvalidTransition
	}

	now := time.Now()
	upd := s.db.Appointment.Update().
		Where(entappt.ID(id), entappt.StatusEQ(appt.Status)).
		SetStatus(to)

	switch to {
	case entappt.StatusCompleted:
		upd = upd.SetCompletedAt(now)
	case entappt.StatusCancelled:
		upd = upd.SetCancelledAt(now)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("transition appointment: %w", err)
	}
	if n == 0 {
		return ErrStaleTransition
	}
	return nil
}

func (s *appointmentService) ownsPatient(ctx context.Context, userID, patientID uuid.UUID) (bool, error) {
	owns, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.UserID(userID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check patient ownership: %w", err)
	}
	return owns, nil
}

func (s *appointmentService) ownPatientID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
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
