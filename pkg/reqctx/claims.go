package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// AuthClaims abstracts the verified token so the token implementation can
// change without touching services.
type AuthClaims interface {
	GetUserID() uuid.UUID

	// GetSessionID returns the session ID when the token carries one.
	GetSessionID() *uuid.UUID

	// GetTokenType returns "access" or "refresh".
	GetTokenType() string

	IsExpired() bool
}

// WithClaims stores verified claims in the context. Only the auth middleware
// should call this.
func WithClaims(ctx context.Context, claims AuthClaims) context.Context {
	return context.WithValue(ctx, keyClaims, claims)
}

// ClaimsFromContext returns the caller's claims, or nil for anonymous
// requests.
func ClaimsFromContext(ctx context.Context) AuthClaims {
	claims, ok := ctx.Value(keyClaims).(AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// IsAuthenticated reports whether unexpired claims exist in the context.
func IsAuthenticated(ctx context.Context) bool {
	claims := ClaimsFromContext(ctx)
	return claims != nil && !claims.IsExpired()
}

// UserIDFromContext extracts the caller's user ID from claims.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return uuid.Nil, false
	}
	return claims.GetUserID(), true
}
