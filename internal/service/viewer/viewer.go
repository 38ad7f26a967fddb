// Package viewer resolves the acting principal for service calls.
// Identity comes from verified token claims only; request payloads are
// never trusted for it.
package viewer

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
	"github.com/vaenkat/health-ecosystem-hub/pkg/reqctx"
)

var ErrUnauthenticated = errors.New("no authenticated principal in context")

// Viewer is the caller of a service operation. Staff covers
// hospital_staff and admin; such callers see all patient rows. A
// non-staff viewer is constrained to rows linked to their own patient
// record.
type Viewer struct {
	UserID uuid.UUID
	Staff  bool
}

// Resolve builds a Viewer from the request context.
func Resolve(ctx context.Context, auth authorize.IAuthorization) (Viewer, error) {
	uid, ok := reqctx.UserIDFromContext(ctx)
	if !ok || uid == uuid.Nil {
		return Viewer{}, ErrUnauthenticated
	}
	staff, err := authorize.IsStaff(ctx, auth, uid.String())
	if err != nil {
		return Viewer{}, err
	}
	return Viewer{UserID: uid, Staff: staff}, nil
}
