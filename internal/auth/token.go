package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Lifetime is how long a session token stays valid.
const Lifetime = 24 * time.Hour

var (
	ErrTokenInvalid = errors.New("the session token is invalid")
	ErrTokenExpired = errors.New("the session has expired, please log in again")
)

// Tokens issues and validates the JWT session tokens.
type Tokens struct {
	secret []byte
}

// NewTokens returns a Tokens signing with secret.
func NewTokens(secret string) Tokens {
	return Tokens{secret: []byte(secret)}
}

// Issue returns a signed session token for the user.
func (t Tokens) Issue(userID uuid.UUID) (string, error) {
	now := time.Now().In(time.UTC)

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Validate checks the token signature and expiry and returns the user ID
// the token was issued for.
func (t Tokens) Validate(tokenString string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Header["alg"])
		}

		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}

		return uuid.Nil, ErrTokenInvalid
	}

	if !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return userID, nil
}
