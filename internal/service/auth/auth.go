package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vaenkat/health-ecosystem-hub/config"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	entuser "github.com/vaenkat/health-ecosystem-hub/internal/repo/user"
	entsession "github.com/vaenkat/health-ecosystem-hub/internal/repo/usersession"
	"github.com/vaenkat/health-ecosystem-hub/pkg/authorize"
	"github.com/vaenkat/health-ecosystem-hub/pkg/crypto"
	"github.com/vaenkat/health-ecosystem-hub/pkg/email"
	pasetotoken "github.com/vaenkat/health-ecosystem-hub/pkg/paseto"
	"github.com/vaenkat/health-ecosystem-hub/pkg/util/otp"
	"github.com/vaenkat/health-ecosystem-hub/pkg/util/password"
)

const (
	maxOTPAttempts   = 5
	accountLockMins  = 15
	maxLoginAttempts = 5
)

// redisKeyOTP returns the Redis key for the OTP hash associated with an email.
func redisKeyOTP(email string) string { return "otp:" + email }

// redisKeyOTPAttempts returns the Redis key for the OTP attempt counter.
func redisKeyOTPAttempts(email string) string { return "otp:attempts:" + email }

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SignupRequest struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type VerifyEmailRequest struct {
	Email string
	Code  string
}

type LoginRequest struct {
	Email    string
	Password string
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Signup(ctx context.Context, req SignupRequest) error
	VerifyEmail(ctx context.Context, req VerifyEmailRequest) (*AuthTokens, error)
	ResendCode(ctx context.Context, emailAddr string) error
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	mailer *email.Client
	paseto *pasetotoken.Manager
	auth   authorize.IAuthorization
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mailer *email.Client,
	paseto *pasetotoken.Manager,
	auth authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		mailer: mailer,
		paseto: paseto,
		auth:   auth,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Signup
// ---------------------------------------------------------------------------

// Signup creates the user, its profile, the default patient role
// assignment and the patient record in a single transaction. The role
// is always "patient": any role named in the request payload is
// ignored, escalation happens only through the admin grant endpoint.
func (s *authService) Signup(ctx context.Context, req SignupRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !reEmail.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u, err := tx.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetStatus("ACTIVE").
		SetEmailVerified(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	pc := tx.Profile.Create().
		SetUserID(u.ID).
		SetFullName(strings.TrimSpace(req.FullName))
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		pc = pc.SetPhone(phone)
	}
	if _, err = pc.Save(ctx); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	_, err = tx.RoleAssignment.Create().
		SetUserID(u.ID).
		SetRole("patient").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create role assignment: %w", err)
	}

	_, err = tx.Patient.Create().
		SetUserID(u.ID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create patient record: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	// RBAC grants happen after commit; repairable if they fail.
	if err := authorize.AssignAppRole(ctx, s.auth, u.ID.String(), authorize.AppRolePatient); err != nil {
		slog.Warn("signup: assign patient role failed", "user_id", u.ID, "err", err)
	}
	if err := authorize.AssignUserSelfRole(ctx, s.auth, u.ID.String()); err != nil {
		slog.Warn("signup: assign self role failed", "user_id", u.ID, "err", err)
	}

	return s.sendVerificationCode(ctx, req.Email, strings.TrimSpace(req.FullName))
}

// ---------------------------------------------------------------------------
// VerifyEmail
// ---------------------------------------------------------------------------

func (s *authService) VerifyEmail(ctx context.Context, req VerifyEmailRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Code = strings.TrimSpace(req.Code)

	otpHash, err := s.rdb.Get(ctx, redisKeyOTP(req.Email)).Result()
	if err == redis.Nil {
		return nil, ErrOTPExpired
	}
	if err != nil {
		return nil, fmt.Errorf("redis get otp: %w", err)
	}

	attempts, _ := s.rdb.Get(ctx, redisKeyOTPAttempts(req.Email)).Int()
	if attempts >= maxOTPAttempts {
		return nil, ErrOTPMaxAttempts
	}

	if err := otp.Verify(otpHash, req.Code); err != nil {
		s.rdb.Incr(ctx, redisKeyOTPAttempts(req.Email))
		return nil, ErrOTPInvalid
	}

	s.rdb.Del(ctx, redisKeyOTP(req.Email), redisKeyOTPAttempts(req.Email))

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if _, err = s.db.User.UpdateOne(u).SetEmailVerified(true).Save(ctx); err != nil {
		return nil, fmt.Errorf("update email_verified: %w", err)
	}

	return s.createSession(ctx, u)
}

func (s *authService) ResendCode(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	u, err := s.db.User.Query().
		Where(entuser.Email(emailAddr), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Do not reveal whether the address is registered.
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}
	if u.EmailVerified {
		return nil
	}
	return s.sendVerificationCode(ctx, emailAddr, "")
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if u.Status == "SUSPENDED" {
		return nil, ErrAccountSuspended
	}
	if !u.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	if u.LockedUntil != nil && time.Now().Before(*u.LockedUntil) {
		return nil, ErrAccountLocked
	}

	if u.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.Verify(*u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, ErrInvalidCredentials
	}

	// Best effort: a failed write must not block the login, but a stuck
	// lockout counter is worth a warning.
	if _, err := s.db.User.UpdateOne(u).
		SetLastLoginAt(time.Now()).
		SetFailedLoginAttempts(0).
		SetNillableLockedUntil(nil).
		Save(ctx); err != nil {
		slog.Warn("login: reset lockout counters failed", "user_id", u.ID, "err", err)
	}

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh || claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())
	switch err := s.rdb.Get(ctx, sessionKey).Err(); {
	case err == redis.Nil:
		return nil, ErrSessionNotFound
	case err != nil:
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	now := time.Now()
	s.db.UserSession.Update().
		Where(entsession.SessionID(claims.SessionID.String())).
		SetLastUsedAt(now).
		Save(ctx)

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged until logout
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}

	// Mark revoked in DB (audit trail, best-effort)
	now := time.Now()
	s.db.UserSession.Update().
		Where(entsession.SessionID(sessionID.String()), entsession.RevokedAtIsNil()).
		SetRevokedAt(now).
		Save(ctx)

	return nil
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return ErrPasswordTooShort
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("get user: %w", err)
	}

	if u.PasswordHash == nil {
		return ErrInvalidCredentials
	}
	if err := password.Verify(*u.PasswordHash, req.CurrentPassword); err != nil {
		return ErrWrongPassword
	}

	newHash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.db.User.UpdateOne(u).SetPasswordHash(newHash).Save(ctx); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sendVerificationCode(ctx context.Context, emailAddr, fullName string) error {
	length := s.cfg.OTP.DefaultLength
	if length < otp.MinLength || length > otp.MaxLength {
		length = otp.DefaultLength
	}
	code, err := otp.Generate(length)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	otpTTL := time.Duration(s.cfg.Authentication.OTPTTLMinutes) * time.Minute
	if otpTTL <= 0 {
		otpTTL = 5 * time.Minute
	}

	if err := s.rdb.Set(ctx, redisKeyOTP(emailAddr), otp.Hash(code), otpTTL).Err(); err != nil {
		return fmt.Errorf("store code: %w", err)
	}
	s.rdb.Set(ctx, redisKeyOTPAttempts(emailAddr), "0", otpTTL+5*time.Minute)

	msg := email.BuildVerificationEmail(email.VerificationEmailData{
		Email:      emailAddr,
		FullName:   fullName,
		Code:       code,
		TTLMinutes: int(otpTTL.Minutes()),
	})
	if err := s.mailer.Send(ctx, msg); err != nil {
		// Mail failure must not block signup; the code can be resent.
		slog.Warn("failed to send verification email", "email", emailAddr, "error", err)
	}

	return nil
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// Persist session record to DB (audit, best-effort)
	s.db.UserSession.Create().
		SetUserID(u.ID).
		SetSessionID(sessionID.String()).
		SetRefreshTokenHash(crypto.Hash(refresh)).
		SetExpiresAt(time.Now().Add(refreshTTL)).
		Save(ctx)

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	attempts := u.FailedLoginAttempts + 1
	upd := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(attempts).
		SetLastFailedLoginAt(time.Now())

	if attempts >= maxLoginAttempts {
		lockUntil := time.Now().Add(accountLockMins * time.Minute)
		upd = upd.SetLockedUntil(lockUntil)
	}
	if _, err := upd.Save(ctx); err != nil {
		slog.Warn("login: record failed attempt failed", "user_id", u.ID, "err", err)
	}
}
