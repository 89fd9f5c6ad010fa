package handler

import (
	"context"

	"buyer-service/internal/model"
)

// BuyerStore is the buyer persistence surface the handlers depend on.
// Implementations must invalidate the buyer listing cache on every
// successful write.
type BuyerStore interface {
	FindAllWithPagination(ctx context.Context, companyID uint, page, limit int) ([]model.Buyer, error)
	FindByID(ctx context.Context, id uint) (*model.Buyer, error)
	Create(ctx context.Context, buyer *model.Buyer) error
	Save(ctx context.Context, buyer *model.Buyer) error
	Delete(ctx context.Context, buyer *model.Buyer) error
}

// ProductStore is the product catalog read surface
type ProductStore interface {
	FindAllWithPagination(ctx context.Context, page, limit int) ([]model.Product, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
}

// CompanyStore resolves company accounts; absent companies are (nil, nil)
type CompanyStore interface {
	FindByEmail(ctx context.Context, email string) (*model.Company, error)
	FindByID(ctx context.Context, id uint) (*model.Company, error)
}
