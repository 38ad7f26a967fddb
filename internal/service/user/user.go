package user

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entprofile "github.com/vaenkat/health-ecosystem-hub/internal/repo/profile"
	entrole "github.com/vaenkat/health-ecosystem-hub/internal/repo/roleassignment"
	entuser "github.com/vaenkat/health-ecosystem-hub/internal/repo/user"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
)

// defaultPhoneRegion is assumed when a phone number has no country prefix.
const defaultPhoneRegion = "US"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type UpdateProfileRequest struct {
	FullName  *string
	Phone     *string
	AvatarURL *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*repo.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.Profile, error)

	// Role administration. Callers must already be authorized as admin;
	// these methods maintain both the role_assignments table and the
	// casbin grouping policies.
	GrantRole(ctx context.Context, adminID, userID uuid.UUID, role string) error
	RevokeRole(ctx context.Context, adminID, userID uuid.UUID, role string) error
	ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &userService{db: db, auth: auth}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		WithProfile().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*repo.Profile, error) {
	p, err := s.db.Profile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return p, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.Profile, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	u := s.db.Profile.UpdateOne(p)

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if len(name) > 255 {
			return nil, ErrInvalidFullName
		}
		u = u.SetFullName(name)
	}
	if req.Phone != nil {
		normalized, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		if normalized == "" {
			u = u.ClearPhone()
		} else {
			u = u.SetPhone(normalized)
		}
	}
	if req.AvatarURL != nil {
		raw := strings.TrimSpace(*req.AvatarURL)
		if raw == "" {
			u = u.ClearAvatarURL()
		} else {
			parsed, err := url.Parse(raw)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				return nil, ErrInvalidURL
			}
			u = u.SetAvatarURL(raw)
		}
	}

	return u.Save(ctx)
}

// ---------------------------------------------------------------------------
// Role administration
// ---------------------------------------------------------------------------

func (s *userService) GrantRole(ctx context.Context, adminID, userID uuid.UUID, role string) error {
	if _, ok := authorize.AppRoleToRBACRole[role]; !ok {
		return ErrInvalidRole
	}

	if _, err := s.GetByID(ctx, userID); err != nil {
		return err
	}

	exists, err := s.db.RoleAssignment.Query().
		Where(entrole.UserID(userID), entrole.RoleEQ(entrole.Role(role))).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check role: %w", err)
	}
	if exists {
		return ErrRoleAlreadyGranted
	}

	_, err = s.db.RoleAssignment.Create().
		SetUserID(userID).
		SetRole(entrole.Role(role)).
		SetGrantedBy(adminID).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return ErrRoleAlreadyGranted
		}
		return fmt.Errorf("create role assignment: %w", err)
	}

	if err := authorize.AssignAppRole(ctx, s.auth, userID.String(), role); err != nil {
		return fmt.Errorf("sync rbac grant: %w", err)
	}
	return nil
}

func (s *userService) RevokeRole(ctx context.Context, adminID, userID uuid.UUID, role string) error {
	if _, ok := authorize.AppRoleToRBACRole[role]; !ok {
		return ErrInvalidRole
	}
	// An admin stripping their own admin role would lock the system out.
	if role == authorize.AppRoleAdmin && adminID == userID {
		return ErrSelfRevoke
	}

	n, err := s.db.RoleAssignment.Delete().
		Where(entrole.UserID(userID), entrole.RoleEQ(entrole.Role(role))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete role assignment: %w", err)
	}
	if n == 0 {
		return ErrRoleNotGranted
	}

	if err := authorize.RemoveAppRole(ctx, s.auth, userID.String(), role); err != nil {
		return fmt.Errorf("sync rbac revoke: %w", err)
	}
	return nil
}

func (s *userService) ListRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := s.db.RoleAssignment.Query().
		Where(entrole.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	roles := make([]string, 0, len(rows))
	for _, r := range rows {
		roles = append(roles, string(r.Role))
	}
	return roles, nil
}

func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
