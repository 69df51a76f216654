package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plain password")
	}

	if !CheckPassword(hash, "secret1") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "secret2") {
		t.Fatal("expected non-matching password to fail")
	}
}

func TestCheckPasswordRejectsGarbageHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "secret1") {
		t.Fatal("expected malformed hash to fail verification")
	}
}
