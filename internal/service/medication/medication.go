package medication

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entmed "github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
)

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
	Search  string // case-insensitive name substring
}

type CreateRequest struct {
	Name         string
	Description  *string
	DosageForm   *string
	Manufacturer *string
}

type UpdateRequest struct {
	Name         *string
	Description  *string
	DosageForm   *string
	Manufacturer *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Medication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Medication, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Medication], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Medication, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type medicationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &medicationService{db: db}
}

func (s *medicationService) Create(ctx context.Context, req CreateRequest) (*repo.Medication, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	exists, err := s.db.Medication.Query().
		Where(entmed.NameEqualFold(req.Name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check name: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	c := s.db.Medication.Create().
		SetName(req.Name)
	if req.Description != nil {
		c = c.SetNillableDescription(req.Description)
	}
	if req.DosageForm != nil {
		c = c.SetNillableDosageForm(req.DosageForm)
	}
	if req.Manufacturer != nil {
		c = c.SetNillableManufacturer(req.Manufacturer)
	}

	return c.Save(ctx)
}

func (s *medicationService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Medication, error) {
	m, err := s.db.Medication.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get medication: %w", err)
	}
	return m, nil
}

func (s *medicationService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Medication], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Medication.Query()
	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entmed.NameContainsFold(search))
	}
	q = q.Order(entmed.ByName(sql.OrderAsc()))

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count medications: %w", err)
	}

	meds, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Medication]{
		Data:       meds,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *medicationService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Medication, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u := s.db.Medication.UpdateOne(m)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		u = u.SetName(name)
	}
	if req.Description != nil {
		u = u.SetNillableDescription(req.Description)
	}
	if req.DosageForm != nil {
		u = u.SetNillableDosageForm(req.DosageForm)
	}
	if req.Manufacturer != nil {
		u = u.SetNillableManufacturer(req.Manufacturer)
	}

	return u.Save(ctx)
}

func (s *medicationService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.Medication.DeleteOne(m).Exec(ctx); err != nil {
		if repo.IsConstraintError(err) {
			return ErrInUse
		}
		return fmt.Errorf("delete medication: %w", err)
	}
	return nil
}
