package utils

import (
	"errors"
	"time"

	"sattva/config"

	"github.com/golang-jwt/jwt"
)

const sessionIssuer = "sattva"

func secretKey() []byte {
	secret := config.AppConfig.SessionSecret
	if secret == "" {
		secret = "sattva-dev-secret"
	}
	return []byte(secret)
}

// GenerateSessionToken creates a signed JWT whose subject is the session ID.
// The token expires after the specified duration.
func GenerateSessionToken(sessionID string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.StandardClaims{
		Subject:   sessionID,
		Issuer:    sessionIssuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIDFromToken extracts the session ID (subject) from a valid token string.
func ExtractIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Issuer != sessionIssuer {
		return "", errors.New("token was not issued by this service")
	}
	if claims.Subject == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}

	return claims.Subject, nil
}
