package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"travelhub/config"
	"travelhub/models"

	"github.com/golang-jwt/jwt"
)

const devSecret = "travelhub-dev-secret"

// secretKey returns the signing key. The development fallback is never
// used in production.
func secretKey() ([]byte, error) {
	if s := config.AppConfig.JWTSecret; s != "" {
		return []byte(s), nil
	}
	if config.IsProduction() {
		return nil, config.ErrMissingJWTSecret
	}
	return []byte(devSecret), nil
}

// GenerateToken creates a signed JWT for the given account.
// The token expires after the specified duration.
func GenerateToken(user models.User, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(duration).Unix(),
	}
	key, err := secretKey()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey()
	})
}

// ActorFromToken validates tokenString and extracts the caller identity.
func ActorFromToken(tokenString string) (models.Actor, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return models.Actor{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Actor{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return models.Actor{}, errors.New("token does not contain a valid 'sub' claim")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if role == "" {
		role = string(models.RoleCustomer)
	}

	return models.Actor{ID: sub, Email: email, Role: models.Role(role)}, nil
}

// TokenRemaining is how long a valid token has left before it expires.
func TokenRemaining(tokenString string) time.Duration {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return 0
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0
	}
	return time.Until(time.Unix(int64(exp), 0))
}
