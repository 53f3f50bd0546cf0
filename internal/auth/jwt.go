package auth

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/surgery-tracker/internal/models"
)

var (
	ErrMissingToken = errors.New("missing or invalid token")
	ErrInvalidToken = errors.New("invalid token")
)

var (
	mu        sync.RWMutex
	jwtSecret = []byte("super-secret-key")
	tokenTTL  = 15 * time.Minute
)

// Configure sets the signing secret and token lifetime. Call once at start-up.
func Configure(secret string, ttl time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func GenerateToken(user models.User) (string, error) {
	mu.RLock()
	secret, ttl := jwtSecret, tokenTTL
	mu.RUnlock()

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	mu.RLock()
	secret := jwtSecret
	mu.RUnlock()

	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
}

// TokenClaims validates a "Bearer <token>" header value and returns its claims.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return nil, nil, ErrMissingToken
	}

	token, err := ParseToken(strings.TrimPrefix(authorization, "Bearer "))
	if err != nil || !token.Valid {
		return nil, nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, ErrInvalidToken
	}
	return token, claims, nil
}
