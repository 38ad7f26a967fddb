package authorize

import (
	"context"
	"errors"
	"fmt"

	casbin "github.com/casbin/casbin/v2"
)

var (
	ErrForbidden   = errors.New("forbidden")
	ErrInvalidArgs = errors.New("invalid authorization arguments")
)

// IAuthorization is the only thing services/middleware should depend on.
type IAuthorization interface {
	// Enforce answers: "Is subject allowed to act on object inside domain?"
	Enforce(ctx context.Context, subject GroupSubject, domain Domain, object Resource, action Action) (bool, error)

	// MustEnforce is convenience for services: return ErrForbidden if not allowed.
	MustEnforce(ctx context.Context, subject GroupSubject, domain Domain, object Resource, action Action) error

	// Role management (grouping policies): g, user_id, role, domain
	AddRoleForUserInDomain(ctx context.Context, subject GroupSubject, role Role, domain Domain) (bool, error)
	RemoveRoleForUserInDomain(ctx context.Context, subject GroupSubject, role Role, domain Domain) (bool, error)
	GetRolesForUserInDomain(ctx context.Context, subject GroupSubject, domain Domain) ([]Role, error)

	// Permission management (policies): p, role, domain, object, action, eft
	AddPermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error)
	RemovePermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error)

	Raw() *casbin.DistributedEnforcer
}

// Authorization is a thin typed wrapper around casbin.Enforcer.
type Authorization struct {
	enforcer  *casbin.DistributedEnforcer
	adminRole Role
}

// NewAuthorization wraps an already-configured enforcer and loads policy,
// using the default config (admin bypass on).
func NewAuthorization(e *casbin.DistributedEnforcer) (IAuthorization, error) {
	return NewAuthorizationWithConfig(e, DefaultConfig())
}

// NewAuthorizationWithConfig is NewAuthorization with an explicit config.
// When cfg.AdminBypass is off, admins go through policy evaluation like
// everyone else.
func NewAuthorizationWithConfig(e *casbin.DistributedEnforcer, cfg Config) (IAuthorization, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: enforcer is nil", ErrInvalidArgs)
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, err
	}
	a := &Authorization{enforcer: e}
	if cfg.AdminBypass {
		a.adminRole = RoleAppAdmin
	}
	return a, nil
}

func (a *Authorization) Raw() *casbin.DistributedEnforcer { return a.enforcer }

// Argument guardrails. Typos in resource or action names would otherwise
// silently deny, so unknown constants are rejected loudly.

func checkDomain(domain Domain) error {
	if domain == "" || !IsValidDomain(domain) {
		return fmt.Errorf("%w: invalid domain: %q", ErrInvalidArgs, domain)
	}
	return nil
}

func checkResource(object Resource) error {
	if object == "" {
		return fmt.Errorf("%w: object is empty", ErrInvalidArgs)
	}
	if _, ok := KnownResources[object]; !ok && object != WildcardResource {
		return fmt.Errorf("%w: unknown resource: %q", ErrInvalidArgs, object)
	}
	return nil
}

func checkAction(action Action) error {
	if action == "" {
		return fmt.Errorf("%w: action is empty", ErrInvalidArgs)
	}
	if _, ok := KnownActions[action]; !ok && action != WildcardAction {
		return fmt.Errorf("%w: unknown action: %q", ErrInvalidArgs, action)
	}
	return nil
}

func checkRole(role Role) error {
	if _, ok := KnownRoles[role]; !ok && role != WildcardRole {
		return fmt.Errorf("%w: unknown role: %q", ErrInvalidArgs, role)
	}
	return nil
}

func (a *Authorization) Enforce(ctx context.Context, subject GroupSubject, domain Domain, object Resource, action Action) (bool, error) {
	_ = ctx // reserved for tracing/logging later

	if subject == "" {
		return false, fmt.Errorf("%w: subject is empty", ErrInvalidArgs)
	}
	if err := checkDomain(domain); err != nil {
		return false, err
	}
	if err := checkResource(object); err != nil {
		return false, err
	}
	if err := checkAction(action); err != nil {
		return false, err
	}

	// Admins in the sys domain skip policy evaluation entirely.
	if a.adminRole != "" && a.enforcer.HasGroupingPolicy(string(subject), string(a.adminRole), string(DomainSys)) {
		return true, nil
	}

	allowed, err := a.enforcer.Enforce(string(subject), string(domain), string(object), string(action))
	if err != nil {
		return false, err
	}

	// A "manage" grant covers the plain CRUD/list actions.
	if !allowed {
		if _, covered := ManageCovers[action]; covered {
			return a.enforcer.Enforce(string(subject), string(domain), string(object), string(ActionManage))
		}
	}
	return allowed, nil
}

func (a *Authorization) MustEnforce(ctx context.Context, subject GroupSubject, domain Domain, object Resource, action Action) error {
	ok, err := a.Enforce(ctx, subject, domain, object, action)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// ---- Grouping (roles) ----

func (a *Authorization) AddRoleForUserInDomain(ctx context.Context, subject GroupSubject, role Role, domain Domain) (bool, error) {
	_ = ctx
	if subject == "" || role == "" {
		return false, fmt.Errorf("%w: empty subject/role", ErrInvalidArgs)
	}
	if err := checkRole(role); err != nil {
		return false, err
	}
	if err := checkDomain(domain); err != nil {
		return false, err
	}
	return a.enforcer.AddGroupingPolicy(string(subject), string(role), string(domain))
}

func (a *Authorization) RemoveRoleForUserInDomain(ctx context.Context, subject GroupSubject, role Role, domain Domain) (bool, error) {
	_ = ctx
	if subject == "" || role == "" {
		return false, fmt.Errorf("%w: empty subject/role", ErrInvalidArgs)
	}
	if err := checkDomain(domain); err != nil {
		return false, err
	}
	return a.enforcer.RemoveGroupingPolicy(string(subject), string(role), string(domain))
}

func (a *Authorization) GetRolesForUserInDomain(ctx context.Context, subject GroupSubject, domain Domain) ([]Role, error) {
	_ = ctx
	if subject == "" {
		return nil, fmt.Errorf("%w: subject is empty", ErrInvalidArgs)
	}
	if err := checkDomain(domain); err != nil {
		return nil, err
	}

	raw := a.enforcer.GetRolesForUserInDomain(string(subject), string(domain))
	roles := make([]Role, 0, len(raw))
	for _, r := range raw {
		roles = append(roles, Role(r))
	}
	return roles, nil
}

// ---- Permissions (p rules) ----

func (a *Authorization) AddPermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error) {
	_ = ctx
	if role == "" || domain == "" || object == "" || action == "" || effect == "" {
		return false, fmt.Errorf("%w: empty permission fields", ErrInvalidArgs)
	}
	if err := checkRole(role); err != nil {
		return false, err
	}
	if err := checkDomain(domain); err != nil {
		return false, err
	}
	if err := checkResource(object); err != nil {
		return false, err
	}
	if err := checkAction(action); err != nil {
		return false, err
	}
	if effect != EffectAllow && effect != EffectDeny {
		return false, fmt.Errorf("%w: invalid effect: %q", ErrInvalidArgs, effect)
	}

	// p, sub(role), dom, obj, act, eft
	return a.enforcer.AddPolicy(string(role), string(domain), string(object), string(action), string(effect))
}

func (a *Authorization) RemovePermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error) {
	_ = ctx
	if role == "" || domain == "" || object == "" || action == "" || effect == "" {
		return false, fmt.Errorf("%w: empty permission fields", ErrInvalidArgs)
	}
	if err := checkDomain(domain); err != nil {
		return false, err
	}
	return a.enforcer.RemovePolicy(string(role), string(domain), string(object), string(action), string(effect))
}
