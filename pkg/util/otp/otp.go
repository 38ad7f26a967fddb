// Package otp generates and checks the short verification codes the
// portal emails during signup. Only the SHA-256 hash of a code is ever
// stored; verification is a constant-time hash comparison.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidLength = errors.New("OTP length must be between 4 and 10")
	ErrMismatch      = errors.New("OTP does not match")
)

const (
	DefaultLength = 6
	MinLength     = 4
	MaxLength     = 10
)

// Alphanumeric charset without the ambiguous 0/O/I/1/L.
const charsetAlphanumeric = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Generate creates a cryptographically secure numeric code of the given
// length, zero-padded.
func Generate(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", ErrInvalidLength
	}

	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n), nil
}

// GenerateDefault creates a 6-digit code.
func GenerateDefault() (string, error) {
	return Generate(DefaultLength)
}

// Hash returns the hex-encoded SHA-256 of the code, whitespace-trimmed.
func Hash(code string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(code)))
	return hex.EncodeToString(sum[:])
}

// Verify compares a plaintext code against a stored hash in constant
// time. Returns ErrMismatch when they differ.
func Verify(hash, code string) error {
	computed := Hash(code)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(computed)) != 1 {
		return ErrMismatch
	}
	return nil
}

// GenerateAlphanumeric creates an unambiguous uppercase alphanumeric
// code, for invitation-style tokens typed by hand.
func GenerateAlphanumeric(length int) (string, error) {
	if length < 1 {
		return "", errors.New("length must be at least 1")
	}

	out := make([]byte, length)
	bound := big.NewInt(int64(len(charsetAlphanumeric)))
	for i := range out {
		n, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		out[i] = charsetAlphanumeric[n.Int64()]
	}

	return string(out), nil
}

// GenerateHex creates a random hex string of 2*byteLength characters,
// for machine-carried tokens.
func GenerateHex(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", errors.New("byte length must be at least 1")
	}

	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}
