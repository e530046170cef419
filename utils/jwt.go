package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 15 * time.Minute

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// GenerateToken signs an HS256 token whose subject is the user's login id.
// A non-positive ttl falls back to 15 minutes.
func GenerateToken(secret []byte, loginID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	claims := jwt.MapClaims{
		"sub": loginID,
		"exp": time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the subject. It
// returns ErrTokenExpired past expiry and ErrInvalidToken for everything
// else (bad signature, wrong method, missing subject).
func ParseToken(secret []byte, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	loginID, err := token.Claims.GetSubject()
	if err != nil || loginID == "" {
		return "", ErrInvalidToken
	}
	return loginID, nil
}
