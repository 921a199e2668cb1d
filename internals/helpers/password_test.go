package helper

import (
	"strings"
	"testing"
)

func TestGenerateRandomPassword(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p := GenerateRandomPassword()
		if len(p) != 8 {
			t.Fatalf("len(%q) = %d, want 8", p, len(p))
		}
		for _, r := range p {
			if !strings.ContainsRune(passwordAlphabet, r) {
				t.Fatalf("password %q contains %q outside alphabet", p, r)
			}
		}
		seen[p] = true
	}
	// 50 draws from a 36^8 space colliding down to a handful would mean
	// the generator is broken, not unlucky.
	if len(seen) < 45 {
		t.Errorf("only %d distinct passwords out of 50 draws", len(seen))
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}
	if err := CheckPasswordHash(hash, "s3cret-pass"); err != nil {
		t.Errorf("CheckPasswordHash with correct password: %v", err)
	}
	if err := CheckPasswordHash(hash, "wrong-pass"); err == nil {
		t.Error("CheckPasswordHash accepted wrong password")
	}
}
