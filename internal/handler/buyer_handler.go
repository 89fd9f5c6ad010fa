package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"buyer-service/internal/auth"
	"buyer-service/internal/cache"
	"buyer-service/internal/model"
	"buyer-service/pkg/logger"
	"buyer-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BuyerRequest defines the structure for buyer creation/update requests.
// Ownership is never taken from the body; it always derives from the token.
type BuyerRequest struct {
	Firstname string `json:"firstname" validate:"required,max=255"`
	Lastname  string `json:"lastname" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Address   string `json:"address" validate:"required,max=255"`
	Phone     string `json:"phone" validate:"required,max=255"`
}

// BuyerHandler serves the authenticated buyer endpoints
type BuyerHandler struct {
	buyers    BuyerStore
	companies CompanyStore
	guard     *auth.Guard
	cache     *cache.Store
}

// NewBuyerHandler creates a BuyerHandler
func NewBuyerHandler(buyers BuyerStore, companies CompanyStore, guard *auth.Guard, store *cache.Store) *BuyerHandler {
	return &BuyerHandler{buyers: buyers, companies: companies, guard: guard, cache: store}
}

// List handles GET /api/buyers with pagination, scoped to the caller's
// company. Listings are served through the tag-scoped cache.
func (h *BuyerHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordBuyerOperation("list")

	companyID, denial := h.guard.Authorize(c, nil, true)
	if denial != nil {
		return denial.Respond(c)
	}
	if companyID == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Company not found"})
	}

	page, limit := parsePagination(c)
	key := cache.BuyerListKey(companyID, page, limit)

	payload, err := h.cache.GetOrFetch(c.Request().Context(), key, cache.TagBuyers,
		func(ctx context.Context) ([]byte, error) {
			buyers, err := h.buyers.FindAllWithPagination(ctx, companyID, page, limit)
			if err != nil {
				return nil, err
			}
			return json.Marshal(newBuyerViews(buyers))
		})
	if err != nil {
		log.Error("Failed to list buyers", zap.Error(err))
		return err
	}

	log.Info("Buyers listed",
		zap.Uint("company_id", companyID),
		zap.Int("page", page),
		zap.Int("limit", limit))
	return c.JSONBlob(http.StatusOK, payload)
}

// Detail handles GET /api/buyer/:id, restricted to the owning company
func (h *BuyerHandler) Detail(c echo.Context) error {
	prometheus.RecordBuyerOperation("detail")

	buyer, err := h.resolveBuyer(c)
	if err != nil {
		return err
	}

	if _, denial := h.guard.Authorize(c, buyer, false); denial != nil {
		return denial.Respond(c)
	}

	return c.JSON(http.StatusOK, newBuyerView(buyer))
}

// Create handles POST /api/buyer. The new buyer is owned by the company
// resolved from the caller's token.
func (h *BuyerHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordBuyerOperation("create")

	companyID, denial := h.guard.Authorize(c, nil, true)
	if denial != nil {
		return denial.Respond(c)
	}
	if companyID == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Company not found"})
	}

	var req BuyerRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Violations(err))
	}

	company, err := h.companies.FindByID(c.Request().Context(), companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Company not found"})
	}

	buyer := model.Buyer{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
		CompanyID: company.ID,
		Company:   *company,
	}

	if err := h.buyers.Create(c.Request().Context(), &buyer); err != nil {
		log.Error("Failed to create buyer", zap.Error(err))
		return err
	}

	log.Info("Buyer created",
		zap.Uint("buyer_id", buyer.ID),
		zap.Uint("company_id", company.ID))
	return c.JSON(http.StatusCreated, echo.Map{
		"Buyer created": newBuyerView(&buyer),
		"location":      detailLocation(c, buyer.ID),
	})
}

// Update handles PUT /api/buyer/:id. All five mutable fields are overwritten
// and the owner is re-resolved from the caller's token.
func (h *BuyerHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordBuyerOperation("update")

	buyer, err := h.resolveBuyer(c)
	if err != nil {
		return err
	}

	companyID, denial := h.guard.Authorize(c, buyer, true)
	if denial != nil {
		return denial.Respond(c)
	}
	if companyID == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Company not found"})
	}

	var req BuyerRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	buyer.Firstname = req.Firstname
	buyer.Lastname = req.Lastname
	buyer.Email = req.Email
	buyer.Address = req.Address
	buyer.Phone = req.Phone

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Violations(err))
	}

	company, err := h.companies.FindByID(c.Request().Context(), companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Company not found"})
	}
	buyer.CompanyID = company.ID
	buyer.Company = *company

	if err := h.buyers.Save(c.Request().Context(), buyer); err != nil {
		log.Error("Failed to update buyer", zap.Error(err))
		return err
	}

	log.Info("Buyer updated", zap.Uint("buyer_id", buyer.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"Buyer modified": newBuyerView(buyer),
		"location":       detailLocation(c, buyer.ID),
	})
}

// Delete handles DELETE /api/buyer/:id, restricted to the owning company
func (h *BuyerHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordBuyerOperation("delete")

	buyer, err := h.resolveBuyer(c)
	if err != nil {
		return err
	}

	if _, denial := h.guard.Authorize(c, buyer, false); denial != nil {
		return denial.Respond(c)
	}

	if err := h.buyers.Delete(c.Request().Context(), buyer); err != nil {
		log.Error("Failed to delete buyer", zap.Error(err))
		return err
	}

	log.Info("Buyer deleted", zap.Uint("buyer_id", buyer.ID))
	return c.NoContent(http.StatusNoContent)
}

// resolveBuyer loads the targeted buyer from the id path parameter, raising
// the documented-route 404 when it does not exist.
func (h *BuyerHandler) resolveBuyer(c echo.Context) (*model.Buyer, error) {
	id, ok := parseID(c)
	if !ok {
		return nil, errNotFound
	}

	buyer, err := h.buyers.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, errNotFound
	}
	return buyer, nil
}

// detailLocation builds the canonical absolute URL of a buyer detail route
func detailLocation(c echo.Context, id uint) string {
	return fmt.Sprintf("%s://%s/api/buyer/%d", c.Scheme(), c.Request().Host, id)
}
