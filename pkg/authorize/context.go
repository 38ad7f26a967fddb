package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/pkg/reqctx"
)

var ErrNoSubjectInContext = errors.New("no subject found in context")

// ClaimsProvider is the minimal identity a caller must carry for
// authorization checks. reqctx.AuthClaims extends it; background jobs and
// tests can satisfy it directly without a full request context.
type ClaimsProvider interface {
	GetUserID() uuid.UUID
}

type ctxKeyClaimsProvider struct{}

// WithClaimsProvider attaches an identity to the context for code paths that
// don't go through the HTTP middleware (workers, tests).
func WithClaimsProvider(ctx context.Context, cp ClaimsProvider) context.Context {
	return context.WithValue(ctx, ctxKeyClaimsProvider{}, cp)
}

// UserIDFromContext resolves the caller's user ID, preferring request claims
// set by the auth middleware over a directly attached ClaimsProvider.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	if claims := reqctx.ClaimsFromContext(ctx); claims != nil {
		if id := claims.GetUserID(); id != uuid.Nil {
			return id, nil
		}
	}
	if cp, ok := ctx.Value(ctxKeyClaimsProvider{}).(ClaimsProvider); ok {
		if id := cp.GetUserID(); id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, ErrNoSubjectInContext
}

// SubjectFromContext returns the caller's user ID as a casbin subject.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	id, err := UserIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	return GroupSubject(id.String()), nil
}

// MustSubjectFromContext panics when no subject is present. Use only behind
// the auth middleware, where claims are guaranteed.
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// DomainFromResource picks the enforcement domain for a resource: the
// owner's private domain when an owner is known, otherwise sys.
func DomainFromResource(userID *string) Domain {
	if userID != nil && *userID != "" {
		return UserDomain(*userID)
	}
	return DomainSys
}

// UserSelfDomain returns the user's private domain for self-owned resources.
func UserSelfDomain(userID string) Domain {
	return UserDomain(userID)
}

// DomainFromContext returns the calling user's own domain, for self-scoped
// operations like profile and session management.
func DomainFromContext(ctx context.Context) (Domain, error) {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		return "", err
	}
	return UserDomain(string(subject)), nil
}
