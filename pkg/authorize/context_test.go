package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type staticClaims struct {
	userID uuid.UUID
}

func (s *staticClaims) GetUserID() uuid.UUID { return s.userID }

func ctxWithUser(id uuid.UUID) context.Context {
	return WithClaimsProvider(context.Background(), &staticClaims{userID: id})
}

func TestSubjectFromContext(t *testing.T) {
	caller := uuid.New()

	tests := []struct {
		name    string
		ctx     context.Context
		want    GroupSubject
		wantErr bool
	}{
		{"claims present", ctxWithUser(caller), GroupSubject(caller.String()), false},
		{"empty context", context.Background(), "", true},
		{"nil user id", ctxWithUser(uuid.Nil), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := SubjectFromContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubjectFromContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if subject != tt.want {
				t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.want)
			}
		})
	}
}

func TestUserIDFromContext(t *testing.T) {
	caller := uuid.New()

	id, err := UserIDFromContext(ctxWithUser(caller))
	if err != nil {
		t.Fatalf("UserIDFromContext() error = %v", err)
	}
	if id != caller {
		t.Errorf("UserIDFromContext() = %s, want %s", id, caller)
	}

	if _, err := UserIDFromContext(context.Background()); err == nil {
		t.Error("expected error for empty context")
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	t.Run("panics without claims", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	t.Run("returns subject with claims", func(t *testing.T) {
		caller := uuid.New()
		got := MustSubjectFromContext(ctxWithUser(caller))
		if want := GroupSubject(caller.String()); got != want {
			t.Errorf("MustSubjectFromContext() = %q, want %q", got, want)
		}
	})
}

func TestDomainFromResource(t *testing.T) {
	owner := "user-456"
	empty := ""

	tests := []struct {
		name   string
		userID *string
		want   Domain
	}{
		{"owner known", &owner, Domain("user:user-456")},
		{"no owner", nil, DomainSys},
		{"empty owner", &empty, DomainSys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainFromResource(tt.userID); got != tt.want {
				t.Errorf("DomainFromResource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserSelfDomain(t *testing.T) {
	const id = "550e8400-e29b-41d4-a716-446655440000"
	if got, want := UserSelfDomain(id), Domain("user:"+id); got != want {
		t.Errorf("UserSelfDomain(%q) = %q, want %q", id, got, want)
	}
}

func TestDomainFromContext(t *testing.T) {
	caller := uuid.New()

	got, err := DomainFromContext(ctxWithUser(caller))
	if err != nil {
		t.Fatalf("DomainFromContext() error = %v", err)
	}
	if want := UserDomain(caller.String()); got != want {
		t.Errorf("DomainFromContext() = %q, want %q", got, want)
	}

	if _, err := DomainFromContext(context.Background()); err == nil {
		t.Error("expected error for empty context")
	}
}
