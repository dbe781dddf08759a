package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "u1", Name: "Asha", Role: RoleAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "u1" {
		t.Fatalf("expected user u1, got %s", claims.UserID)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("expected role %s, got %s", RoleAdmin, claims.Role)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "u1", Role: RoleEmployee}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := ParseToken("other", token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestAuthenticate(t *testing.T) {
	store := NewStore()
	service := NewService(store)

	if _, err := service.Register("Asha", "asha@example.com", "Sup3rSecret", RoleManager); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := service.Authenticate("asha@example.com", "Sup3rSecret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Role != RoleManager {
		t.Fatalf("expected manager role, got %s", user.Role)
	}

	if _, err := service.Authenticate("asha@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Authenticate("nobody@example.com", "Sup3rSecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmailAndUnknownRole(t *testing.T) {
	store := NewStore()
	service := NewService(store)

	if _, err := service.Register("Asha", "asha@example.com", "Sup3rSecret", RoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := service.Register("Dup", "ASHA@example.com", "Sup3rSecret", RoleAdmin); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if _, err := service.Register("Bad", "bad@example.com", "Sup3rSecret", "wizard"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
