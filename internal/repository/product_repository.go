package repository

import (
	"context"
	"errors"
	"time"

	"buyer-service/internal/model"
	"buyer-service/prometheus"

	"gorm.io/gorm"
)

// ProductRepository provides read access to the shared product catalog
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a ProductRepository over the given connection
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindAllWithPagination returns one page of products ordered by id
func (r *ProductRepository) FindAllWithPagination(ctx context.Context, page, limit int) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var products []model.Product
	result := r.db.WithContext(ctx).
		Order("id").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return products, nil
}

// FindByID returns the product with the given id, or (nil, nil) when absent
func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var product model.Product
	result := r.db.WithContext(ctx).First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &product, nil
}
