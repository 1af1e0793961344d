package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amanahdev/ramadan-companion/config"
)

const tokenSubject = "tracker-owner"

// GenerateToken issues an HS256 JWT for the tracker owner after a successful
// access-key exchange.
func GenerateToken(duration time.Duration) (string, error) {
	cfg := config.Get()

	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken validates a JWT and returns its claims.
func ParseToken(tokenStr string) (*jwt.RegisteredClaims, error) {
	cfg := config.Get()
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.Subject != tokenSubject {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
