package handler

import (
	"net/http"

	"buyer-service/pkg/jwtutil"
	"buyer-service/pkg/logger"
	"buyer-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues company tokens
type AuthHandler struct {
	companies CompanyStore
	jwt       *jwtutil.JWTUtil
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(companies CompanyStore, jwt *jwtutil.JWTUtil) *AuthHandler {
	return &AuthHandler{companies: companies, jwt: jwt}
}

// Login handles POST /api/login_check: verifies company credentials and
// returns a signed JWT.
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse login request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	company, err := h.companies.FindByEmail(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}
	if company == nil {
		log.Warn("Unknown login principal", zap.String("username", req.Username))
		prometheus.RecordAuthError("unknown_principal")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(company.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("username", req.Username))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := h.jwt.GenerateToken(company.Email)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return err
	}

	log.Info("Company authenticated", zap.Uint("company_id", company.ID))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
