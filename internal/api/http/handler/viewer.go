package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/vaenkat/health-ecosystem-hub/internal/service/viewer"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
	pasetotoken "github.com/vaenkat/health-ecosystem-hub/pkg/paseto"
)

// callerID returns the authenticated user id from verified token claims.
// Request payloads are never consulted for identity.
func callerID(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// resolveViewer builds the acting principal for patient-scoped service
// calls: identity from claims, staff bit from the grouping policies.
func resolveViewer(c fiber.Ctx, auth authorize.IAuthorization) (viewer.Viewer, error) {
	return viewer.Resolve(c.Context(), auth)
}
