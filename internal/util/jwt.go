package util

import (
	"encoding/base64"
	"time"

	"learnify_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID   uint           `json:"userId"`
	Role     model.UserRole `json:"role"`
	Email    string         `json:"email"`
	Username string         `json:"username"`
	jwt.RegisteredClaims
}

// signingKey derives the HMAC key from the configured secret. Secrets
// produced by cmd/secretgen are base64; anything that does not decode
// cleanly is used as raw bytes.
func signingKey(secret string) []byte {
	if key, err := base64.StdEncoding.DecodeString(secret); err == nil {
		return key
	}
	return []byte(secret)
}

func GenerateJWT(user *model.User, secret string, expiration time.Duration) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:   user.ID,
		Role:     user.Role,
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey(secret))
}

// ParseJWT checks signature, structure and expiry in one pass. Malformed,
// expired and badly signed tokens all come back as a single error; callers
// only branch on nil/err.
func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

// IsTokenValid reports whether the token belongs to the given user and is
// still accepted by the parser.
func IsTokenValid(tokenString, secret string, user *model.User) bool {
	claims, err := ParseJWT(tokenString, secret)
	if err != nil {
		return false
	}
	return claims.Subject == user.Username
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
