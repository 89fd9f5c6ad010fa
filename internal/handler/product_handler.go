package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"buyer-service/internal/cache"
	"buyer-service/pkg/logger"
	"buyer-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductHandler serves the public, read-only product catalog
type ProductHandler struct {
	products ProductStore
	cache    *cache.Store
}

// NewProductHandler creates a ProductHandler
func NewProductHandler(products ProductStore, store *cache.Store) *ProductHandler {
	return &ProductHandler{products: products, cache: store}
}

// List handles GET /api/products with pagination, served through the cache
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("list")

	page, limit := parsePagination(c)
	key := cache.ProductListKey(page, limit)

	payload, err := h.cache.GetOrFetch(c.Request().Context(), key, cache.TagProducts,
		func(ctx context.Context) ([]byte, error) {
			products, err := h.products.FindAllWithPagination(ctx, page, limit)
			if err != nil {
				return nil, err
			}
			return json.Marshal(products)
		})
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return err
	}

	return c.JSONBlob(http.StatusOK, payload)
}

// Detail handles GET /api/products/:id, uncached
func (h *ProductHandler) Detail(c echo.Context) error {
	prometheus.RecordProductOperation("detail")

	id, ok := parseID(c)
	if !ok {
		return errNotFound
	}

	product, err := h.products.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if product == nil {
		return errNotFound
	}

	return c.JSON(http.StatusOK, product)
}
