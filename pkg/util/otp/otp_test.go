package otp

import (
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"minimum length", 4, false},
		{"default length", 6, false},
		{"maximum length", 10, false},
		{"too short", 3, true},
		{"too long", 11, true},
		{"zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Generate(tt.length)
			if tt.wantErr {
				if err != ErrInvalidLength {
					t.Errorf("Expected ErrInvalidLength, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(code) != tt.length {
				t.Errorf("Expected %d digits, got %d (%q)", tt.length, len(code), code)
			}
			for _, r := range code {
				if r < '0' || r > '9' {
					t.Errorf("Expected digits only, got %q", code)
					break
				}
			}
		})
	}
}

func TestGenerateDefault(t *testing.T) {
	code, err := GenerateDefault()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(code) != DefaultLength {
		t.Errorf("Expected %d digits, got %d", DefaultLength, len(code))
	}
}

func TestHashAndVerify(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash := Hash("482913")
		if err := Verify(hash, "482913"); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("whitespace is normalized", func(t *testing.T) {
		hash := Hash("482913")
		if err := Verify(hash, "  482913  "); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("wrong code fails", func(t *testing.T) {
		hash := Hash("482913")
		if err := Verify(hash, "482914"); err != ErrMismatch {
			t.Errorf("Expected ErrMismatch, got %v", err)
		}
	})
}

func TestGenerateAlphanumeric(t *testing.T) {
	code, err := GenerateAlphanumeric(8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(code) != 8 {
		t.Errorf("Expected 8 characters, got %d", len(code))
	}

	// The charset excludes ambiguous characters.
	for _, r := range code {
		switch r {
		case '0', 'O', 'I', '1', 'L':
			t.Errorf("Ambiguous character %q in %q", r, code)
		}
	}

	if _, err := GenerateAlphanumeric(0); err == nil {
		t.Error("Expected error for zero length")
	}
}

func TestGenerateHex(t *testing.T) {
	s, err := GenerateHex(16)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(s) != 32 {
		t.Errorf("Expected 32 hex chars, got %d", len(s))
	}

	if _, err := GenerateHex(0); err == nil {
		t.Error("Expected error for zero byte length")
	}
}
