package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/surgery-tracker/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	Configure("test-secret", time.Minute)
	user := models.User{ID: 7, Username: "lee", Role: models.RoleStaff}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, claims, err := TokenClaims("Bearer " + token)
	if err != nil {
		t.Fatalf("claims: %v", err)
	}
	if claims["username"] != "lee" {
		t.Errorf("expected username lee, got %v", claims["username"])
	}
	if claims["role"] != models.RoleStaff {
		t.Errorf("expected role staff, got %v", claims["role"])
	}
	if sub, _ := claims["sub"].(float64); int(sub) != 7 {
		t.Errorf("expected sub 7, got %v", claims["sub"])
	}
}

func TestTokenClaimsRejectsBadInput(t *testing.T) {
	Configure("test-secret", time.Minute)

	if _, _, err := TokenClaims("Token abc"); !errors.Is(err, ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}
	if _, _, err := TokenClaims("Bearer not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1, "exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, _ := foreign.SignedString([]byte("another-secret"))
	if _, _, err := TokenClaims("Bearer " + signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	Configure("test-secret", time.Minute)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1, "exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, _ := expired.SignedString([]byte("test-secret"))

	if _, _, err := TokenClaims("Bearer " + signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "secret") {
		t.Error("expected password to match")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
