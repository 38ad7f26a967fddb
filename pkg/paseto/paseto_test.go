package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	keys := NewLocalKeys()
	mgr, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "healthhub-test",
		Audience:   "healthhub-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
	}, keys)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	return mgr
}

func TestNew(t *testing.T) {
	t.Run("rejects mode mismatch", func(t *testing.T) {
		keys := NewLocalKeys()
		_, err := New(Config{Mode: ModePublic, Issuer: "x", Audience: "y"}, keys)
		if err == nil {
			t.Error("Expected error for mode mismatch")
		}
	})

	t.Run("requires issuer and audience", func(t *testing.T) {
		keys := NewLocalKeys()
		if _, err := New(Config{Mode: ModeLocal, Audience: "y"}, keys); err == nil {
			t.Error("Expected error for missing issuer")
		}
		if _, err := New(Config{Mode: ModeLocal, Issuer: "x"}, keys); err == nil {
			t.Error("Expected error for missing audience")
		}
	})
}

func TestIssueAndVerify(t *testing.T) {
	mgr := newTestManager(t)
	userID := uuid.New()
	sessionID := uuid.New()

	t.Run("access token round trip", func(t *testing.T) {
		tok, err := mgr.IssueAccess(userID, &sessionID)
		if err != nil {
			t.Fatalf("IssueAccess failed: %v", err)
		}

		claims, err := mgr.Verify(tok)
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if claims.Type != TokenTypeAccess {
			t.Errorf("Expected access type, got %q", claims.Type)
		}
		if claims.UserID != userID {
			t.Errorf("UserID = %v, want %v", claims.UserID, userID)
		}
		if claims.SessionID == nil || *claims.SessionID != sessionID {
			t.Errorf("SessionID = %v, want %v", claims.SessionID, sessionID)
		}
		if claims.IsExpired() {
			t.Error("Fresh token must not be expired")
		}
	})

	t.Run("refresh token round trip", func(t *testing.T) {
		tok, err := mgr.IssueRefresh(userID, &sessionID)
		if err != nil {
			t.Fatalf("IssueRefresh failed: %v", err)
		}

		claims, err := mgr.Verify(tok)
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if claims.Type != TokenTypeRefresh {
			t.Errorf("Expected refresh type, got %q", claims.Type)
		}
	})

	t.Run("session id is optional", func(t *testing.T) {
		tok, err := mgr.IssueAccess(userID, nil)
		if err != nil {
			t.Fatalf("IssueAccess failed: %v", err)
		}

		claims, err := mgr.Verify(tok)
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if claims.SessionID != nil {
			t.Errorf("Expected nil SessionID, got %v", claims.SessionID)
		}
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		if _, err := mgr.Verify("v4.local.not-a-token"); err == nil {
			t.Error("Expected error for malformed token")
		}
	})

	t.Run("rejects tokens from another key", func(t *testing.T) {
		other := newTestManager(t)
		tok, err := other.IssueAccess(userID, nil)
		if err != nil {
			t.Fatalf("IssueAccess failed: %v", err)
		}
		if _, err := mgr.Verify(tok); err == nil {
			t.Error("Expected error for token encrypted with a different key")
		}
	})
}

func TestLoadKeys(t *testing.T) {
	t.Run("local mode requires symmetric hex", func(t *testing.T) {
		if _, err := LoadKeys(KeyStrings{Mode: ModeLocal}); err == nil {
			t.Error("Expected error for missing symmetric key")
		}
	})

	t.Run("local mode round trip", func(t *testing.T) {
		k := NewLocalKeys()
		loaded, err := LoadKeys(KeyStrings{Mode: ModeLocal, SymmetricHex: k.Symmetric.ExportHex()})
		if err != nil {
			t.Fatalf("LoadKeys failed: %v", err)
		}
		if loaded.Symmetric == nil {
			t.Error("Expected symmetric key to be loaded")
		}
	})

	t.Run("public mode derives public from secret", func(t *testing.T) {
		k := NewPublicKeys()
		loaded, err := LoadKeys(KeyStrings{Mode: ModePublic, SecretHex: k.Secret.ExportHex()})
		if err != nil {
			t.Fatalf("LoadKeys failed: %v", err)
		}
		if loaded.Public == nil {
			t.Error("Expected public key to be derived from the secret key")
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		if _, err := LoadKeys(KeyStrings{Mode: Mode("v2")}); err == nil {
			t.Error("Expected error for unknown mode")
		}
	})
}
