package auth

import (
	"context"
	"net/http"

	"buyer-service/internal/model"
	"buyer-service/pkg/jwtutil"
	"buyer-service/pkg/logger"
	"buyer-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CompanyResolver looks up the company matching a login email. A missing
// company is reported as (nil, nil), not an error.
type CompanyResolver interface {
	FindByEmail(ctx context.Context, email string) (*model.Company, error)
}

// TokenValidator decodes a signed token into company claims
type TokenValidator interface {
	ValidateToken(token string) (*jwtutil.CompanyClaims, error)
}

// Denial is a terminal authorization outcome. The handler must return the
// denial response untouched and skip the repository and cache entirely.
type Denial struct {
	Status  int
	Message string
}

// Respond writes the denial as the request's JSON response
func (d *Denial) Respond(c echo.Context) error {
	return c.JSON(d.Status, echo.Map{"error": d.Message})
}

// Guard runs the per-request authorization procedure for buyer routes:
// extract token, decode, resolve the caller's company, and check that a
// targeted buyer belongs to it.
type Guard struct {
	companies CompanyResolver
	tokens    TokenValidator
}

// NewGuard creates a Guard over the given company resolver and token validator
func NewGuard(companies CompanyResolver, tokens TokenValidator) *Guard {
	return &Guard{companies: companies, tokens: tokens}
}

// Authorize applies the guard to the current request. When target is non-nil
// the caller must own it. When returnCompany is true and the caller's company
// resolved, its id is returned for scoping downstream queries and writes.
// A non-nil Denial short-circuits the request.
func (g *Guard) Authorize(c echo.Context, target *model.Buyer, returnCompany bool) (uint, *Denial) {
	log := logger.FromContext(c)

	token, ok := ExtractToken(c.Request())
	if !ok {
		log.Warn("Missing or malformed Authorization header")
		prometheus.RecordAuthError("missing_token")
		return 0, &Denial{
			Status:  http.StatusUnauthorized,
			Message: "You are not authorized to perform this action",
		}
	}

	claims, err := g.tokens.ValidateToken(token)
	if err != nil {
		log.Warn("Token decode failed", zap.Error(err))
		prometheus.RecordAuthError("decode_failed")
		return 0, &Denial{
			Status:  http.StatusBadRequest,
			Message: "There was a problem with the request",
		}
	}

	company, err := g.companies.FindByEmail(c.Request().Context(), claims.Username)
	if err != nil {
		log.Error("Company lookup failed", zap.Error(err))
		return 0, &Denial{
			Status:  http.StatusInternalServerError,
			Message: "A server problem has occurred",
		}
	}

	if target != nil && company != nil && target.Company.Email != "" && target.Company.Email != company.Email {
		log.Warn("Caller does not own the targeted buyer",
			zap.Uint("buyer_id", target.ID),
			zap.Uint("company_id", company.ID))
		prometheus.RecordAuthError("ownership_denied")
		return 0, &Denial{
			Status:  http.StatusForbidden,
			Message: "You are not authorized to interact with this buyer",
		}
	}

	if returnCompany && company != nil {
		return company.ID, nil
	}

	return 0, nil
}
