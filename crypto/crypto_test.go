// SPDX-License-Identifier: GPL-3.0-only

package crypto

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	crypto := NewCrypto()
	password := "Nathan1!"

	hash, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "" {
		t.Error("Hash should not be empty")
	}

	hash2, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("Second HashPassword failed: %v", err)
	}

	if hash == hash2 {
		t.Error("Two hashes of same password should be different (due to salt)")
	}
}

func TestVerifyPassword(t *testing.T) {
	crypto := NewCrypto()
	password := "Nathan1!"
	wrongPassword := "wrongpassword"

	hash, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	err = crypto.VerifyPassword(password, hash)
	if err != nil {
		t.Errorf("VerifyPassword failed for correct password: %v", err)
	}

	err = crypto.VerifyPassword(wrongPassword, hash)
	if err == nil {
		t.Error("VerifyPassword should fail for wrong password")
	}

	err = crypto.VerifyPassword(password, "invalid-hash")
	if err == nil {
		t.Error("VerifyPassword should fail for invalid hash")
	}
}

func TestNewCryptoReadsEnv(t *testing.T) {
	t.Setenv("ARGON2_TIME", "3")
	t.Setenv("ARGON2_THREADS", "not-a-number")
	c := NewCrypto()
	if c.ArgonTime != 3 {
		t.Errorf("Expected ArgonTime 3, got %d", c.ArgonTime)
	}
	if c.ArgonThreads != 2 {
		t.Errorf("Expected default ArgonThreads 2, got %d", c.ArgonThreads)
	}
}

func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString("tok_", 8, "hex")
	if err != nil {
		t.Fatalf("GenerateRandomString failed: %v", err)
	}
	if !strings.HasPrefix(s, "tok_") || len(s) != len("tok_")+16 {
		t.Errorf("Unexpected token %q", s)
	}

	if _, err := GenerateRandomString("", 8, "base32"); err == nil {
		t.Error("GenerateRandomString should fail for unsupported encoding")
	}
}

func TestGenerateMessageID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := GenerateMessageID()
		if err != nil {
			t.Fatalf("GenerateMessageID failed: %v", err)
		}
		if len(id) != 10 {
			t.Fatalf("Expected 10 characters, got %q", id)
		}
		for _, r := range id {
			if r < '0' || r > '9' {
				t.Fatalf("Expected only digits, got %q", id)
			}
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Error("Expected different message IDs across calls")
	}
}
