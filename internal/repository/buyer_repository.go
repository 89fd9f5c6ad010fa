package repository

import (
	"context"
	"errors"
	"time"

	"buyer-service/internal/cache"
	"buyer-service/internal/model"
	"buyer-service/prometheus"

	"gorm.io/gorm"
)

// BuyerRepository provides paginated, company-scoped access to buyers. Every
// successful write invalidates the buyer listing cache before returning, so
// the write path and the invalidation path cannot drift apart.
type BuyerRepository struct {
	db          *gorm.DB
	invalidator cache.Invalidator
}

// NewBuyerRepository creates a BuyerRepository over the given connection.
// The invalidator is called after each successful create, save or delete.
func NewBuyerRepository(db *gorm.DB, invalidator cache.Invalidator) *BuyerRepository {
	return &BuyerRepository{db: db, invalidator: invalidator}
}

// FindAllWithPagination returns one page of the company's buyers ordered by
// id, with the owning company loaded.
func (r *BuyerRepository) FindAllWithPagination(ctx context.Context, companyID uint, page, limit int) ([]model.Buyer, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var buyers []model.Buyer
	result := r.db.WithContext(ctx).
		Preload("Company").
		Where("company_id = ?", companyID).
		Order("id").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&buyers)
	if result.Error != nil {
		return nil, result.Error
	}
	return buyers, nil
}

// FindByID returns the buyer with the given id and its owning company, or
// (nil, nil) when absent.
func (r *BuyerRepository) FindByID(ctx context.Context, id uint) (*model.Buyer, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var buyer model.Buyer
	result := r.db.WithContext(ctx).Preload("Company").First(&buyer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &buyer, nil
}

// Create persists a new buyer and invalidates the buyer listing cache
func (r *BuyerRepository) Create(ctx context.Context, buyer *model.Buyer) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	// The loaded Company association stays read-only
	if err := r.db.WithContext(ctx).Omit("Company").Create(buyer).Error; err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Save persists changes to an existing buyer and invalidates the buyer
// listing cache.
func (r *BuyerRepository) Save(ctx context.Context, buyer *model.Buyer) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	if err := r.db.WithContext(ctx).Omit("Company").Save(buyer).Error; err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Delete removes the buyer and invalidates the buyer listing cache
func (r *BuyerRepository) Delete(ctx context.Context, buyer *model.Buyer) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	if err := r.db.WithContext(ctx).Delete(buyer).Error; err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *BuyerRepository) invalidate(ctx context.Context) {
	if r.invalidator != nil {
		r.invalidator.InvalidateTags(ctx, cache.TagBuyers)
	}
}
