package auth

import (
	"context"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/enttest"
)

func newLockoutFixture(t *testing.T) (*authService, *repo.User) {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared&_fk=1"
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	u, err := client.User.Create().
		SetEmail("staff@example.com").
		SetEmailVerified(true).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &authService{db: client}, u
}

func TestRecordFailedLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("increments the attempt counter", func(t *testing.T) {
		svc, u := newLockoutFixture(t)
		svc.recordFailedLogin(ctx, u)

		got, err := svc.db.User.Get(ctx, u.ID)
		if err != nil {
			t.Fatalf("reload user: %v", err)
		}
		if got.FailedLoginAttempts != 1 {
			t.Errorf("failed_login_attempts = %d, want 1", got.FailedLoginAttempts)
		}
		if got.LockedUntil != nil {
			t.Error("locked_until set below the attempt threshold")
		}
		if got.LastFailedLoginAt == nil {
			t.Error("last_failed_login_at not set")
		}
	})

	t.Run("locks the account at the threshold", func(t *testing.T) {
		svc, u := newLockoutFixture(t)
		u, err := svc.db.User.UpdateOne(u).
			SetFailedLoginAttempts(maxLoginAttempts - 1).
			Save(ctx)
		if err != nil {
			t.Fatalf("prime attempts: %v", err)
		}

		svc.recordFailedLogin(ctx, u)

		got, err := svc.db.User.Get(ctx, u.ID)
		if err != nil {
			t.Fatalf("reload user: %v", err)
		}
		if got.FailedLoginAttempts != maxLoginAttempts {
			t.Errorf("failed_login_attempts = %d, want %d", got.FailedLoginAttempts, maxLoginAttempts)
		}
		if got.LockedUntil == nil {
			t.Error("locked_until not set at the attempt threshold")
		}
	})

	t.Run("survives a failed write", func(t *testing.T) {
		svc, u := newLockoutFixture(t)
		if err := svc.db.User.DeleteOneID(u.ID).Exec(ctx); err != nil {
			t.Fatalf("delete user: %v", err)
		}

		// The row is gone, so the bookkeeping save fails; it must be
		// logged and swallowed, never surfaced to the login flow.
		svc.recordFailedLogin(ctx, u)
	})
}
