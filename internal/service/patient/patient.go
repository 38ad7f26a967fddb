package patient

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entpatient "github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
	entuser "github.com/vaenkat/health-ecosystem-hub/internal/repo/user"
	"github.com/vaenkat/health-ecosystem-hub/internal/service/viewer"
	"github.com/vaenkat/health-ecosystem-hub/pkg/crypto"
)

var reBloodType = regexp.MustCompile(`^(A|B|AB|O)[+-]$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page    int
	PerPage int
}

type CreateRequest struct {
	UserID            uuid.UUID
	DateOfBirth       *time.Time
	BloodType         *string
	Allergies         []string
	EmergencyContact  *string
	EmergencyPhone    *string
	MedicalHistory    []string
	ChronicConditions []string
	InsuranceNumber   *string // plaintext; encrypted before persist
}

type UpdateRequest struct {
	DateOfBirth       *time.Time
	BloodType         *string
	Allergies         []string
	EmergencyContact  *string
	EmergencyPhone    *string
	MedicalHistory    []string
	ChronicConditions []string
	InsuranceNumber   *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create registers a clinical record for an existing user. Staff only;
	// signup creates the default record itself.
	Create(ctx context.Context, req CreateRequest) (*repo.Patient, error)

	// GetByID enforces ownership: a non-staff viewer may only fetch the
	// record attached to their own account.
	GetByID(ctx context.Context, v viewer.Viewer, patientID uuid.UUID) (*repo.Patient, error)

	// GetSelf returns the viewer's own patient record.
	GetSelf(ctx context.Context, v viewer.Viewer) (*repo.Patient, error)

	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Patient], error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	encKey []byte // AES-256 key for insurance_number encryption
}

func New(db *repo.Client, encKey []byte) Service {
	return &patientService{db: db, encKey: encKey}
}

func (s *patientService) Create(ctx context.Context, req CreateRequest) (*repo.Patient, error) {
	userExists, err := s.db.User.Query().
		Where(entuser.ID(req.UserID), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !userExists {
		return nil, ErrUserNotFound
	}

	exists, err := s.db.Patient.Query().
		Where(entpatient.UserID(req.UserID), entpatient.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	c := s.db.Patient.Create().
		SetUserID(req.UserID)

	if req.DateOfBirth != nil {
		c = c.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.BloodType != nil {
		if !reBloodType.MatchString(*req.BloodType) {
			return nil, ErrInvalidBloodType
		}
		c = c.SetBloodType(*req.BloodType)
	}
	if req.Allergies != nil {
		c = c.SetAllergies(req.Allergies)
	}
	if req.EmergencyContact != nil {
		c = c.SetNillableEmergencyContact(req.EmergencyContact)
	}
	if req.EmergencyPhone != nil {
		c = c.SetNillableEmergencyPhone(req.EmergencyPhone)
	}
	if req.MedicalHistory != nil {
		c = c.SetMedicalHistory(req.MedicalHistory)
	}
	if req.ChronicConditions != nil {
		c = c.SetChronicConditions(req.ChronicConditions)
	}
	if req.InsuranceNumber != nil {
		enc, err := crypto.Encrypt(s.encKey, *req.InsuranceNumber)
		if err != nil {
			return nil, fmt.Errorf("encrypt insurance number: %w", err)
		}
		c = c.SetInsuranceNumber(enc)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return s.decryptInsurance(p)
}

func (s *patientService) GetByID(ctx context.Context, v viewer.Viewer, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		WithUser().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	// Ownership check happens after the row loads so a cross-patient
	// request is denied, never an empty success.
	if !v.Staff && p.UserID != v.UserID {
		return nil, ErrAccessDenied
	}
	return s.decryptInsurance(p)
}

func (s *patientService) GetSelf(ctx context.Context, v viewer.Viewer) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(v.UserID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get own patient: %w", err)
	}
	return s.decryptInsurance(p)
}

func (s *patientService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil()).
		Order(entpatient.ByCreatedAt(sql.OrderDesc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	patients, err := q.WithUser().Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	for _, p := range patients {
		if _, err := s.decryptInsurance(p); err != nil {
			return nil, err
		}
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       patients,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}

	u := s.db.Patient.UpdateOne(p)

	if req.DateOfBirth != nil {
		u = u.SetNillableDateOfBirth(req.DateOfBirth)
	}
	if req.BloodType != nil {
		if !reBloodType.MatchString(*req.BloodType) {
			return nil, ErrInvalidBloodType
		}
		u = u.SetBloodType(*req.BloodType)
	}
	if req.Allergies != nil {
		u = u.SetAllergies(req.Allergies)
	}
	if req.EmergencyContact != nil {
		u = u.SetNillableEmergencyContact(req.EmergencyContact)
	}
	if req.EmergencyPhone != nil {
		u = u.SetNillableEmergencyPhone(req.EmergencyPhone)
	}
	if req.MedicalHistory != nil {
		u = u.SetMedicalHistory(req.MedicalHistory)
	}
	if req.ChronicConditions != nil {
		u = u.SetChronicConditions(req.ChronicConditions)
	}
	if req.InsuranceNumber != nil {
		enc, err := crypto.Encrypt(s.encKey, *req.InsuranceNumber)
		if err != nil {
			return nil, fmt.Errorf("encrypt insurance number: %w", err)
		}
		u = u.SetInsuranceNumber(enc)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return s.decryptInsurance(updated)
}

// decryptInsurance replaces the stored ciphertext with plaintext on the
// loaded row. Callers are already authorized for the row.
func (s *patientService) decryptInsurance(p *repo.Patient) (*repo.Patient, error) {
	if p.InsuranceNumber == nil || *p.InsuranceNumber == "" {
		return p, nil
	}
	plain, err := crypto.Decrypt(s.encKey, *p.InsuranceNumber)
	if err != nil {
		return nil, fmt.Errorf("decrypt insurance number: %w", err)
	}
	p.InsuranceNumber = &plain
	return p, nil
}
