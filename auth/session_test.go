package auth

import (
	"testing"
	"time"
)

func TestSessionManager_IssueAndValidate(t *testing.T) {
	manager := NewSessionManager("test-secret", 12*time.Hour)

	token, err := manager.Issue("user-123", "admin@syrincal.com", "admin", "standard")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Error("Issue() returned empty token")
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if claims.UserID != "user-123" {
		t.Errorf("claims.UserID = %v, want user-123", claims.UserID)
	}
	if claims.Email != "admin@syrincal.com" {
		t.Errorf("claims.Email = %v, want admin@syrincal.com", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("claims.Role = %v, want admin", claims.Role)
	}
	if claims.PriceTier != "standard" {
		t.Errorf("claims.PriceTier = %v, want standard", claims.PriceTier)
	}
}

func TestSessionManager_RejectsExpiredToken(t *testing.T) {
	manager := NewSessionManager("test-secret", -time.Minute)

	token, err := manager.Issue("user-123", "agent@syrincal.com", "agent", "clinic")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := manager.Validate(token); err != ErrExpiredToken {
		t.Errorf("Validate() error = %v, want ErrExpiredToken", err)
	}
}

func TestSessionManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewSessionManager("secret-a", 12*time.Hour)
	validator := NewSessionManager("secret-b", 12*time.Hour)

	token, err := issuer.Issue("user-123", "agent@syrincal.com", "agent", "clinic")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := validator.Validate(token); err != ErrInvalidToken {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}

func TestSessionManager_RejectsGarbage(t *testing.T) {
	manager := NewSessionManager("test-secret", 12*time.Hour)

	if _, err := manager.Validate("not-a-token"); err != ErrInvalidToken {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !VerifyPassword("correct horse battery staple", hash) {
		t.Error("VerifyPassword() = false for matching password")
	}
	if VerifyPassword("wrong password", hash) {
		t.Error("VerifyPassword() = true for non-matching password")
	}
}
