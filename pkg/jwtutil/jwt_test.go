package jwtutil

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestUtil() *JWTUtil {
	return New(&JWTConfig{SigningKey: "unit-test-key", ExpirationHours: 1})
}

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	util := newTestUtil()

	token, err := util.GenerateToken("company@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := util.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Username != "company@example.com" {
		t.Fatalf("expected username to round trip, got %q", claims.Username)
	}
}

func TestValidateRejectsWrongKey(t *testing.T) {
	token, err := newTestUtil().GenerateToken("company@example.com")
	if err != nil {
		t.Fatal(err)
	}

	other := New(&JWTConfig{SigningKey: "different-key", ExpirationHours: 1})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected signature validation to fail")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	util := newTestUtil()

	claims := CompanyClaims{
		Username: "company@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-key"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := util.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestValidateFailsClosedWithoutUsername(t *testing.T) {
	util := newTestUtil()

	claims := CompanyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-key"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = util.ValidateToken(token)
	if err == nil {
		t.Fatal("expected token without username to fail validation")
	}
	if !errors.Is(err, ErrMissingUsername) {
		t.Fatalf("expected ErrMissingUsername, got %v", err)
	}
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	util := newTestUtil()

	claims := CompanyClaims{
		Username: "company@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := util.ValidateToken(token); err == nil {
		t.Fatal("expected unsigned token to be rejected")
	}
}
