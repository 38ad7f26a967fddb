package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	pasetotoken "github.com/vaenkat/health-ecosystem-hub/pkg/paseto"
	"github.com/vaenkat/health-ecosystem-hub/pkg/reqctx"
)

// AuthRequired verifies a Bearer PASETO access token and confirms the
// session is still live in Redis, so logout revokes access immediately. On
// success the claims land in Fiber locals and the request context.
func AuthRequired(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerToken(c.Get("Authorization"))
		if !ok {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(token)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		// Refresh tokens are only good for the refresh endpoint.
		if claims.Type != pasetotoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
