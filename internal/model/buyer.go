package model

import "time"

// Buyer represents a contact record owned by exactly one company. Ownership
// is derived from the authenticated caller's token, never from request input.
type Buyer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Firstname string    `json:"firstname" gorm:"type:varchar(255);not null"`
	Lastname  string    `json:"lastname" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	Address   string    `json:"address" gorm:"type:varchar(255);not null"`
	Phone     string    `json:"phone" gorm:"type:varchar(255);not null"`
	CompanyID uint      `json:"-" gorm:"index;not null"`
	Company   Company   `json:"company_associated" gorm:"foreignKey:CompanyID"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
