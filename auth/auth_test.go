// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateSessionToken() returned empty string")
	}

	// Should be URL-safe (no padding)
	if strings.Contains(token, "=") {
		t.Error("GenerateSessionToken() contains padding characters")
	}

	// Should be reasonably long (24 bytes encoded)
	if len(token) < 30 {
		t.Errorf("GenerateSessionToken() too short: %d chars", len(token))
	}

	// Test randomness - should not produce duplicates
	tokens := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken()
		if err != nil {
			t.Fatalf("GenerateSessionToken() error on iteration %d: %v", i, err)
		}
		if tokens[token] {
			t.Errorf("GenerateSessionToken() produced duplicate token: %s", token)
		}
		tokens[token] = true
	}
}

func TestHashToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		salt  string
	}{
		{"standard", "some-session-token", "secret-salt"},
		{"empty token", "", "salt"},
		{"empty salt", "token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashToken(tt.token, tt.salt)

			if hash == "" {
				t.Error("HashToken() returned empty string")
			}

			// SHA-256 HMAC hex encodes to 64 chars
			if len(hash) != 64 {
				t.Errorf("HashToken() length = %d, want 64", len(hash))
			}

			// Should be deterministic so lookups can match the stored hash
			if hash != HashToken(tt.token, tt.salt) {
				t.Error("HashToken() is not deterministic")
			}
		})
	}

	// Different tokens should produce different hashes
	if HashToken("token1", "salt") == HashToken("token2", "salt") {
		t.Error("HashToken() produced same hash for different tokens")
	}

	// Different salts should produce different hashes
	if HashToken("token", "salt1") == HashToken("token", "salt2") {
		t.Error("HashToken() produced same hash for different salts")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "correct horse battery" {
		t.Error("HashPassword() returned the plaintext")
	}

	// Two hashes of the same password differ (random salt)
	hash2, _ := HashPassword("correct horse battery")
	if hash == hash2 {
		t.Error("HashPassword() produced identical hashes - missing salt?")
	}

	if err := CheckPassword(hash, "correct horse battery"); err != nil {
		t.Errorf("CheckPassword() rejected the right password: %v", err)
	}

	err = CheckPassword(hash, "wrong password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword() error = %v, want ErrInvalidCredentials", err)
	}
}

// Benchmark tests
func BenchmarkGenerateID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateID(16)
	}
}

func BenchmarkHashToken(b *testing.B) {
	for i := 0; i < b.N; i++ {
		HashToken("some-session-token", "secret-salt")
	}
}
