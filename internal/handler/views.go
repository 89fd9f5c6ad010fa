package handler

import "buyer-service/internal/model"

// CompanyView is the company shape embedded in buyer responses. The password
// hash never leaves the model.
type CompanyView struct {
	ID      uint     `json:"id"`
	Email   string   `json:"email"`
	Company string   `json:"company"`
	Roles   []string `json:"roles"`
}

// BuyerView is the serialized buyer shape with its owning company
type BuyerView struct {
	ID                uint        `json:"id"`
	Firstname         string      `json:"firstname"`
	Lastname          string      `json:"lastname"`
	Email             string      `json:"email"`
	Address           string      `json:"address"`
	Phone             string      `json:"phone"`
	CompanyAssociated CompanyView `json:"company_associated"`
}

func newCompanyView(c *model.Company) CompanyView {
	return CompanyView{
		ID:      c.ID,
		Email:   c.Email,
		Company: c.Name,
		Roles:   c.RoleList(),
	}
}

func newBuyerView(b *model.Buyer) BuyerView {
	return BuyerView{
		ID:                b.ID,
		Firstname:         b.Firstname,
		Lastname:          b.Lastname,
		Email:             b.Email,
		Address:           b.Address,
		Phone:             b.Phone,
		CompanyAssociated: newCompanyView(&b.Company),
	}
}

func newBuyerViews(buyers []model.Buyer) []BuyerView {
	views := make([]BuyerView, len(buyers))
	for i := range buyers {
		views[i] = newBuyerView(&buyers[i])
	}
	return views
}
