package pasetotoken

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
)

type Config struct {
	Mode Mode

	Issuer   string
	Audience string

	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Implicit assertions are authenticated but not carried in the token.
	Implicit []byte
}

func (c *Config) validate(keyMode Mode) error {
	if c.Mode != keyMode {
		return ErrConfig{Msg: "cfg.Mode must match keys.Mode"}
	}
	if c.Issuer == "" {
		return ErrConfig{Msg: "Issuer is required"}
	}
	if c.Audience == "" {
		return ErrConfig{Msg: "Audience is required"}
	}
	if c.AccessTTL <= 0 {
		c.AccessTTL = defaultAccessTTL
	}
	if c.RefreshTTL <= 0 {
		c.RefreshTTL = defaultRefreshTTL
	}
	return nil
}

// Manager issues and verifies the portal's PASETO v4 tokens. Access
// tokens gate API calls, refresh tokens mint new session pairs; both
// carry the user id and, when a session exists, the session id.
type Manager struct {
	cfg   Config
	keys  Keys
	parse paseto.Parser
}

func New(cfg Config, keys Keys) (*Manager, error) {
	if err := cfg.validate(keys.Mode); err != nil {
		return nil, err
	}

	p := paseto.NewParser()
	for _, rule := range []paseto.Rule{
		paseto.IssuedBy(cfg.Issuer),
		paseto.ForAudience(cfg.Audience),
		paseto.NotExpired(),
		paseto.ValidAt(time.Now()),
	} {
		p.AddRule(rule)
	}

	return &Manager{cfg: cfg, keys: keys, parse: p}, nil
}

func (m *Manager) IssueAccess(userID uuid.UUID, sessionID *uuid.UUID) (string, error) {
	return m.issue(TokenTypeAccess, userID, sessionID, m.cfg.AccessTTL)
}

func (m *Manager) IssueRefresh(userID uuid.UUID, sessionID *uuid.UUID) (string, error) {
	return m.issue(TokenTypeRefresh, userID, sessionID, m.cfg.RefreshTTL)
}

func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	tok, err := m.parseToken(tokenStr)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}

	claims, err := extractClaims(tok, m.cfg.Issuer, m.cfg.Audience)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}
	return claims, nil
}

func (m *Manager) parseToken(tokenStr string) (*paseto.Token, error) {
	switch m.cfg.Mode {
	case ModeLocal:
		if m.keys.Symmetric == nil {
			return nil, ErrConfig{Msg: "missing symmetric key"}
		}
		return m.parse.ParseV4Local(*m.keys.Symmetric, tokenStr, m.cfg.Implicit)
	case ModePublic:
		if m.keys.Public == nil {
			return nil, ErrConfig{Msg: "missing public key"}
		}
		return m.parse.ParseV4Public(*m.keys.Public, tokenStr, m.cfg.Implicit)
	}
	return nil, ErrConfig{Msg: "unknown mode"}
}

func (m *Manager) issue(tt TokenType, userID uuid.UUID, sessionID *uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()

	tok := paseto.NewToken()
	tok.SetIssuer(m.cfg.Issuer)
	tok.SetAudience(m.cfg.Audience)
	tok.SetJti(randHex(16))
	tok.SetIssuedAt(now)
	tok.SetNotBefore(now)
	tok.SetExpiration(now.Add(ttl))
	tok.SetSubject(userID.String())

	tok.SetString("typ", string(tt))
	tok.SetString("uid", userID.String())
	if sessionID != nil {
		tok.SetString("sid", sessionID.String())
	}

	switch m.cfg.Mode {
	case ModeLocal:
		if m.keys.Symmetric == nil {
			return "", ErrConfig{Msg: "missing symmetric key"}
		}
		return tok.V4Encrypt(*m.keys.Symmetric, m.cfg.Implicit), nil
	case ModePublic:
		if m.keys.Secret == nil {
			return "", ErrConfig{Msg: "missing secret key"}
		}
		return tok.V4Sign(*m.keys.Secret, m.cfg.Implicit), nil
	}
	return "", ErrConfig{Msg: "unknown mode"}
}

func randHex(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// claimReader collects the first error across a sequence of claim reads
// so extraction stays flat.
type claimReader struct {
	tok *paseto.Token
	err error
}

func (r *claimReader) str(key string) string {
	if r.err != nil {
		return ""
	}
	var v string
	v, r.err = r.tok.GetString(key)
	return v
}

func (r *claimReader) at(get func() (time.Time, error)) time.Time {
	if r.err != nil {
		return time.Time{}
	}
	var v time.Time
	v, r.err = get()
	return v
}

func extractClaims(tok *paseto.Token, iss, aud string) (*Claims, error) {
	jti, err := tok.GetJti()
	if err != nil {
		return nil, err
	}
	sub, err := tok.GetSubject()
	if err != nil {
		return nil, err
	}

	r := &claimReader{tok: tok}
	out := &Claims{
		Issuer:      iss,
		Audience:    aud,
		TokenID:     jti,
		Subject:     sub,
		IssuedAt:    r.at(tok.GetIssuedAt),
		NotBefore:   r.at(tok.GetNotBefore),
		ExpiresAt:   r.at(tok.GetExpiration),
		RawFooter:   tok.Footer(),
		RawClaimsJS: tok.ClaimsJSON(),
	}

	out.Type = TokenType(r.str("typ"))
	uidStr := r.str("uid")
	if r.err != nil {
		return nil, r.err
	}

	uid, err := uuid.Parse(uidStr)
	if err != nil {
		return nil, err
	}
	out.UserID = uid

	// sid is only present on session-bound tokens
	if sidStr, err := tok.GetString("sid"); err == nil {
		sid, err := uuid.Parse(sidStr)
		if err != nil {
			return nil, err
		}
		out.SessionID = &sid
	}

	return out, nil
}
