package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	id := uuid.New()

	token, err := GenerateToken(id, "ph@example.com", "Pharma", "pharmacist", "v1", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != id || claims.Role != "pharmacist" || claims.TokenVersion != "v1" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	expired, _ := GenerateToken(uuid.New(), "a@b.c", "A", "admin", "v", -time.Minute)
	if _, err := ValidateToken(expired); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token: got %v", err)
	}

	other, _ := GenerateToken(uuid.New(), "a@b.c", "A", "admin", "v", time.Hour)
	t.Setenv("JWT_SECRET", "rotated")
	if _, err := ValidateToken(other); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: got %v", err)
	}

	if _, err := ValidateToken(""); !errors.Is(err, ErrMissingToken) {
		t.Errorf("empty token: got %v", err)
	}
	if _, err := ValidateToken("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: got %v", err)
	}
}
