// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"verifiedtutors/config"
	"verifiedtutors/internal/domain/service"
)

const (
	defaultAccessTTL = 24 * time.Hour
	defaultResetTTL  = 30 * time.Minute
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	resetSecret  string        // Secret key for signing password reset tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	resetTTL     time.Duration // Time-to-live for reset tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Reset == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	resetTTL := defaultResetTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		resetSecret:  cfg.SecretKey.Reset,
		accessTTL:    accessTTL,
		resetTTL:     resetTTL,
	}, nil
}

// GenerateAccessToken creates a bearer token carrying the user's role.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	return s.generateToken(userID, role, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
}

// GenerateResetToken creates a short-lived token for password reset links.
// It is signed with a separate secret so a leaked access token can never
// reset a password.
func (s *jwtService) GenerateResetToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, "", s.resetTTL, s.resetSecret, service.TokenTypeReset)
}

// ValidateToken checks a token against both secrets and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims, err := s.parse(tokenString, s.accessSecret)
	if err != nil {
		claims, err = s.parse(tokenString, s.resetSecret)
	}
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) parse(tokenString, secret string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims := &service.Claims{UserID: userID}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if tokenType, ok := mapClaims["type"].(string); ok {
		claims.Type = tokenType
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, role string, ttl time.Duration, secret, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),            // Subject (who the token is for)
		"iat":  time.Now().Unix(),          // Issued At
		"exp":  time.Now().Add(ttl).Unix(), // Expiration Time
		"type": tokenType,                  // Type of token (access or reset)
	}
	// Only the access token carries the role for stateless authorization.
	if role != "" {
		claims["role"] = role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
