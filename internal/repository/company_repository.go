package repository

import (
	"context"
	"errors"
	"time"

	"buyer-service/internal/model"
	"buyer-service/prometheus"

	"gorm.io/gorm"
)

// CompanyRepository provides read access to company accounts
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a CompanyRepository over the given connection
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// FindByEmail returns the company with the given login email, or (nil, nil)
// when no such company exists.
func (r *CompanyRepository) FindByEmail(ctx context.Context, email string) (*model.Company, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var company model.Company
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &company, nil
}

// FindByID returns the company with the given id, or (nil, nil) when absent
func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*model.Company, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var company model.Company
	result := r.db.WithContext(ctx).First(&company, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &company, nil
}
