package models

import (
	"errors"
	"testing"
	"time"
)

func TestPasswordResetValidate(t *testing.T) {
	now := time.Now()

	fresh := PasswordReset{Code: "123456", ExpiresAt: now.Add(ResetCodeTTL)}
	if err := fresh.Validate(now); err != nil {
		t.Fatalf("unexpected error for fresh code: %v", err)
	}

	used := PasswordReset{Code: "123456", ExpiresAt: now.Add(ResetCodeTTL), Used: true}
	if err := used.Validate(now); !errors.Is(err, ErrResetCodeUsed) {
		t.Fatalf("expected ErrResetCodeUsed, got %v", err)
	}

	expired := PasswordReset{Code: "123456", ExpiresAt: now.Add(-time.Minute)}
	if err := expired.Validate(now); !errors.Is(err, ErrResetCodeExpired) {
		t.Fatalf("expected ErrResetCodeExpired, got %v", err)
	}
}

func TestPasswordResetUsedTakesPrecedenceOverExpiry(t *testing.T) {
	now := time.Now()
	row := PasswordReset{Code: "123456", ExpiresAt: now.Add(-time.Minute), Used: true}
	if err := row.Validate(now); !errors.Is(err, ErrResetCodeUsed) {
		t.Fatalf("expected ErrResetCodeUsed, got %v", err)
	}
}

func TestPasswordResetIsExpiredBoundary(t *testing.T) {
	now := time.Now()
	row := PasswordReset{ExpiresAt: now}

	if !row.IsExpired(now) {
		t.Fatal("code expiring exactly now should be treated as expired")
	}
	if row.IsExpired(now.Add(-time.Second)) {
		t.Fatal("code should still be valid one second before expiry")
	}
}
