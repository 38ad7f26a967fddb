package pasetotoken

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/vaenkat/health-ecosystem-hub/config"
)

// CtxKeyClaims is the fiber Locals key the auth middleware stores verified
// claims under.
const CtxKeyClaims = "auth.claims"

// ClaimsFromFiber returns the verified claims for the current request, if
// the auth middleware ran.
func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	cl, ok := c.Locals(CtxKeyClaims).(*Claims)
	return cl, ok
}

// NewPasetoManager builds a Manager from the central config's
// authentication section.
func NewPasetoManager(cfg *config.Config) (*Manager, error) {
	p := cfg.Authentication.Paseto

	keys, err := LoadKeys(KeyStrings{
		Mode:         Mode(p.Mode),
		SymmetricHex: p.LocalKeyHex,
		SecretHex:    p.SecretKeyHex,
		PublicHex:    p.PublicKeyHex,
	})
	if err != nil {
		return nil, err
	}

	return New(Config{
		Mode:       Mode(p.Mode),
		Issuer:     p.Issuer,
		Audience:   p.Audience,
		AccessTTL:  time.Duration(p.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(p.RefreshTTLDays) * 24 * time.Hour,
	}, keys)
}
