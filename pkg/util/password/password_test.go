package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHashFormat(t *testing.T) {
	hash, err := Hash("open sesame")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=") {
		t.Errorf("unexpected hash prefix: %s", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 6 {
		t.Errorf("expected 6 PHC segments, got %d", len(parts))
	}
}

func TestVerify(t *testing.T) {
	const secret = "a fairly long portal password"
	hash, err := Hash(secret)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{"correct password", hash, secret, nil},
		{"wrong password", hash, "not the password", ErrMismatch},
		{"empty password", hash, "", ErrMismatch},
		{"empty hash", "", secret, ErrInvalidHash},
		{"garbage hash", "randomgarbage", secret, ErrInvalidHash},
		{"wrong algorithm", "$argon2i$v=19$m=65536,t=3,p=2$c29tZXNhbHQ$c29tZWhhc2g", secret, ErrInvalidHash},
		{"malformed params", "$argon2id$v=19$invalid$c29tZXNhbHQ$c29tZWhhc2g", secret, ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.hash, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashSaltsDiffer(t *testing.T) {
	const secret = "same password twice"

	first, err := Hash(secret)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Hash(secret)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ by salt")
	}
	for _, h := range []string{first, second} {
		if err := Verify(h, secret); err != nil {
			t.Errorf("Verify(%q) = %v", h, err)
		}
	}
}

func TestHashWithParams(t *testing.T) {
	custom := &Params{
		Memory:      32 * 1024,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}

	hash, err := HashWithParams("tuned", custom)
	if err != nil {
		t.Fatalf("HashWithParams() error = %v", err)
	}

	if !strings.Contains(hash, "m=32768,t=2,p=1") {
		t.Errorf("custom params not encoded: %s", hash)
	}
	if err := Verify(hash, "tuned"); err != nil {
		t.Errorf("Verify() with custom params = %v", err)
	}
}

func TestNeedsRehash(t *testing.T) {
	current, err := Hash("stays current")
	if err != nil {
		t.Fatal(err)
	}
	if NeedsRehash(current) {
		t.Error("hash with default params should not need rehash")
	}

	weak, err := HashWithParams("stored years ago", &Params{
		Memory:      32 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !NeedsRehash(weak) {
		t.Error("hash with outdated params should need rehash")
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"zero falls back to default", 0, 16},
		{"negative falls back to default", -5, 16},
		{"length 8", 8, 8},
		{"length 32", 32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.length); len(got) != tt.want {
				t.Errorf("Generate(%d) length = %d, want %d", tt.length, len(got), tt.want)
			}
		})
	}

	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		p := Generate(16)
		if _, dup := seen[p]; dup {
			t.Fatal("Generate() produced a duplicate password")
		}
		seen[p] = struct{}{}
	}
}

func TestMatch(t *testing.T) {
	hash, err := Hash("matchable")
	if err != nil {
		t.Fatal(err)
	}

	if !Match(hash, "matchable") {
		t.Error("Match() = false for correct password")
	}
	if Match(hash, "different") {
		t.Error("Match() = true for wrong password")
	}
	if Match("invalidhash", "matchable") {
		t.Error("Match() = true for invalid hash")
	}
}

func BenchmarkVerify(b *testing.B) {
	hash, err := Hash("benchmark password")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Verify(hash, "benchmark password")
	}
}
