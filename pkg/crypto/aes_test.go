package crypto

import (
	"strings"
	"testing"
)

const testKeyHex = "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4"

func TestKeyFromHex(t *testing.T) {
	t.Run("valid 32-byte key", func(t *testing.T) {
		key, err := KeyFromHex(testKeyHex)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(key) != 32 {
			t.Errorf("Expected 32-byte key, got %d", len(key))
		}
	})

	t.Run("rejects short key", func(t *testing.T) {
		_, err := KeyFromHex("deadbeef")
		if err != ErrInvalidKey {
			t.Errorf("Expected ErrInvalidKey, got %v", err)
		}
	})

	t.Run("rejects non-hex input", func(t *testing.T) {
		_, err := KeyFromHex(strings.Repeat("zz", 32))
		if err == nil {
			t.Error("Expected error for non-hex input")
		}
	})
}

func TestEncryptDecrypt(t *testing.T) {
	key, err := KeyFromHex(testKeyHex)
	if err != nil {
		t.Fatalf("Failed to decode key: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		plaintext := "INS-2024-001234"
		encrypted, err := Encrypt(key, plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		if encrypted == plaintext {
			t.Error("Ciphertext must not equal plaintext")
		}

		decrypted, err := Decrypt(key, encrypted)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != plaintext {
			t.Errorf("Decrypt() = %q, want %q", decrypted, plaintext)
		}
	})

	t.Run("random nonce produces distinct ciphertexts", func(t *testing.T) {
		a, _ := Encrypt(key, "same value")
		b, _ := Encrypt(key, "same value")
		if a == b {
			t.Error("Expected distinct ciphertexts for repeated plaintext")
		}
	})

	t.Run("rejects wrong key size", func(t *testing.T) {
		if _, err := Encrypt([]byte("short"), "x"); err != ErrInvalidKey {
			t.Errorf("Expected ErrInvalidKey, got %v", err)
		}
		if _, err := Decrypt([]byte("short"), "x"); err != ErrInvalidKey {
			t.Errorf("Expected ErrInvalidKey, got %v", err)
		}
	})

	t.Run("rejects truncated ciphertext", func(t *testing.T) {
		_, err := Decrypt(key, "AAAA")
		if err != ErrCiphertextTooShort {
			t.Errorf("Expected ErrCiphertextTooShort, got %v", err)
		}
	})

	t.Run("rejects tampered ciphertext", func(t *testing.T) {
		encrypted, _ := Encrypt(key, "sensitive")
		tampered := encrypted[:len(encrypted)-4] + "AAA="
		if _, err := Decrypt(key, tampered); err == nil {
			t.Error("Expected error for tampered ciphertext")
		}
	})
}

func TestHash(t *testing.T) {
	a := Hash("INS-2024-001234")
	b := Hash("INS-2024-001234")
	c := Hash("INS-2024-005678")

	if a != b {
		t.Error("Hash must be deterministic")
	}
	if a == c {
		t.Error("Different values must hash differently")
	}
	if len(a) != 64 {
		t.Errorf("Expected 64-char hex digest, got %d chars", len(a))
	}
}
