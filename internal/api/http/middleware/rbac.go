package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
	pasetotoken "github.com/vaenkat/health-ecosystem-hub/pkg/paseto"
)

// selfScopedResources are enforced in the caller's own user:<id> domain;
// everything else is a system-wide role gate in the sys domain.
var selfScopedResources = map[authorize.Resource]struct{}{
	authorize.ResourceProfile:        {},
	authorize.ResourceAuthSession:    {},
	authorize.ResourceRoleAssignment: {},
}

// RequirePermission checks if the authenticated user holds the given
// permission. The role gate only: row-level ownership (a patient seeing
// just their own records) is applied by the owning service.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		domain := authorize.DomainSys
		if _, self := selfScopedResources[resource]; self {
			domain = authorize.UserSelfDomain(claims.UserID.String())
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
