package model

import (
	"strings"
	"time"
)

// RoleAdmin is granted to every company account
const RoleAdmin = "ROLE_ADMIN"

// Company represents the tenant account owning buyers. The company email is
// the login principal carried in JWT claims.
type Company struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(180);uniqueIndex;not null"`
	Name      string    `json:"company" gorm:"type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	Roles     string    `json:"-" gorm:"type:varchar(255)"` // Comma-separated list of granted roles
	Buyers    []Buyer   `json:"-" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// RoleList returns the granted roles, always including ROLE_ADMIN
func (c *Company) RoleList() []string {
	roles := []string{RoleAdmin}
	for _, role := range strings.Split(c.Roles, ",") {
		role = strings.TrimSpace(role)
		if role != "" && role != RoleAdmin {
			roles = append(roles, role)
		}
	}
	return roles
}
