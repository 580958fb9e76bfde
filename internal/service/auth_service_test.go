package service

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dnevnik/dnevnik-backend/internal/config"
	"github.com/dnevnik/dnevnik-backend/internal/model"
)

func testAuthService(expiry time.Duration) *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  expiry,
		BcryptCost: bcrypt.MinCost,
	})
}

func TestCheckPassword(t *testing.T) {
	auth := testAuthService(time.Hour)

	hash, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if err := auth.CheckPassword(hash, "correct horse"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}

	if err := auth.CheckPassword(hash, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	// A malformed stored hash must be indistinguishable from a mismatch.
	if err := auth.CheckPassword("not-a-bcrypt-hash", "anything"); err != ErrInvalidCredentials {
		t.Errorf("malformed hash: got %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	auth := testAuthService(time.Hour)

	token, err := auth.GenerateToken(42, model.RoleTeacher)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id: got %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleTeacher {
		t.Errorf("role: got %q, want teacher", claims.Role)
	}
	if claims.Subject != "42" {
		t.Errorf("subject: got %q, want 42", claims.Subject)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	auth := testAuthService(-time.Minute)

	token, err := auth.GenerateToken(1, model.RoleAdmin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := auth.ValidateToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	auth := testAuthService(time.Hour)
	other := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})

	token, err := other.GenerateToken(1, model.RoleAdmin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := auth.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	auth := testAuthService(time.Hour)
	if _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}
