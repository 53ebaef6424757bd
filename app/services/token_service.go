package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vastra-store/vastra/app/apperrors"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	AdminTokenTTL = 24 * time.Hour
	UserTokenTTL  = 7 * 24 * time.Hour
)

// TokenClaims is what Verify hands back: who the token is for and which
// endpoint family it may touch.
type TokenClaims struct {
	Subject string
	Role    string
}

// TokenService issues and verifies both token shapes. The admin token carries
// the fixed operator email as its subject; user tokens carry the user id.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Issue(subject, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify rejects missing, malformed, expired, and signature-invalid tokens
// with an AuthError. The caller checks the role against the endpoint family.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, apperrors.Auth("Authorization token missing or invalid")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Auth("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.Auth("Invalid or expired token")
	}

	subject, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if subject == "" || role == "" {
		return nil, apperrors.Auth("Invalid or expired token")
	}

	return &TokenClaims{Subject: subject, Role: role}, nil
}
