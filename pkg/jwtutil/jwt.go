package jwtutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig holds JWT configuration
type JWTConfig struct {
	SigningKey      string
	ExpirationHours int
}

// CompanyClaims represents the JWT claims identifying the calling company.
// The principal is carried in the "username" claim and holds the company's
// login email.
type CompanyClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ErrMissingUsername is returned when a token carries no username claim.
var ErrMissingUsername = errors.New("token has no username claim")

// Validate implements jwt.ClaimsValidator. Tokens without a principal are
// rejected at decode time.
func (c *CompanyClaims) Validate() error {
	if c.Username == "" {
		return ErrMissingUsername
	}
	return nil
}

// JWTUtil issues and validates company tokens
type JWTUtil struct {
	config *JWTConfig
}

// New creates a new JWT utility with the given configuration
func New(config *JWTConfig) *JWTUtil {
	return &JWTUtil{config: config}
}

// GenerateToken creates a signed token for the given company email
func (j *JWTUtil) GenerateToken(email string) (string, error) {
	if j.config == nil {
		return "", errors.New("JWT configuration not provided")
	}

	claims := CompanyClaims{
		Username: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(j.config.ExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.SigningKey))
}

// ValidateToken validates and parses the JWT token
func (j *JWTUtil) ValidateToken(tokenString string) (*CompanyClaims, error) {
	if j.config == nil {
		return nil, errors.New("JWT configuration not provided")
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&CompanyClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(j.config.SigningKey), nil
		},
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CompanyClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
