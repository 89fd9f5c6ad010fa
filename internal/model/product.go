package model

import "time"

// Product represents a shared catalog entry. Products are read-only through
// this API and carry no ownership.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Label       string    `json:"label" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
