package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the decoded token payload handed to the rest of the app. It
// satisfies reqctx.AuthClaims so services never touch raw tokens.
type Claims struct {
	Type TokenType

	UserID    uuid.UUID
	SessionID *uuid.UUID

	Issuer   string
	Audience string

	IssuedAt  time.Time
	NotBefore time.Time
	ExpiresAt time.Time

	// TokenID is the jti claim, used for revocation lookups.
	TokenID string
	Subject string

	RawFooter   []byte
	RawClaimsJS []byte
}

func (c *Claims) GetUserID() uuid.UUID { return c.UserID }

func (c *Claims) GetSessionID() *uuid.UUID { return c.SessionID }

func (c *Claims) GetTokenType() string { return string(c.Type) }

func (c *Claims) IsExpired() bool { return time.Now().After(c.ExpiresAt) }
