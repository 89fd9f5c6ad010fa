package handler

import (
	"net/http"
	"testing"
)

func TestLoginReturnsUsableToken(t *testing.T) {
	app := newTestApp()

	rec := doJSON(app, http.MethodPost, "/api/login_check", "",
		`{"username":"contact@techwave.io","password":"password"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected a token in the response, got %v", body)
	}

	claims, err := app.jwt.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token did not validate: %v", err)
	}
	if claims.Username != "contact@techwave.io" {
		t.Fatalf("unexpected username claim %q", claims.Username)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newTestApp()

	rec := doJSON(app, http.MethodPost, "/api/login_check", "",
		`{"username":"contact@techwave.io","password":"letmein"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "invalid credentials" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestLoginRejectsUnknownCompany(t *testing.T) {
	app := newTestApp()

	rec := doJSON(app, http.MethodPost, "/api/login_check", "",
		`{"username":"nobody@example.com","password":"password"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	app := newTestApp()

	rec := doJSON(app, http.MethodPost, "/api/login_check", "", `{"username":`)
	if rec.Code == http.StatusOK {
		t.Fatalf("expected an error status, got 200")
	}
}
