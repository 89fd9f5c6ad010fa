package handler

import (
	"context"
	"sort"
	"time"

	"buyer-service/internal/auth"
	"buyer-service/internal/cache"
	"buyer-service/internal/model"
	"buyer-service/pkg/config"
	"buyer-service/pkg/jwtutil"

	"github.com/labstack/echo/v4"
)

// fakeCompanyStore is an in-memory CompanyStore
type fakeCompanyStore struct {
	companies []model.Company
}

func (f *fakeCompanyStore) FindByEmail(_ context.Context, email string) (*model.Company, error) {
	for i := range f.companies {
		if f.companies[i].Email == email {
			company := f.companies[i]
			return &company, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyStore) FindByID(_ context.Context, id uint) (*model.Company, error) {
	for i := range f.companies {
		if f.companies[i].ID == id {
			company := f.companies[i]
			return &company, nil
		}
	}
	return nil, nil
}

// fakeBuyerStore is an in-memory BuyerStore honoring the write contract:
// every successful mutation invalidates the buyer listing cache.
type fakeBuyerStore struct {
	buyers      map[uint]model.Buyer
	companies   *fakeCompanyStore
	invalidator cache.Invalidator
	nextID      uint

	listCalls   int
	createCalls int
	saveCalls   int
	deleteCalls int
}

func newFakeBuyerStore(companies *fakeCompanyStore, invalidator cache.Invalidator) *fakeBuyerStore {
	return &fakeBuyerStore{
		buyers:      make(map[uint]model.Buyer),
		companies:   companies,
		invalidator: invalidator,
		nextID:      1,
	}
}

func (f *fakeBuyerStore) withCompany(b model.Buyer) model.Buyer {
	if company, _ := f.companies.FindByID(context.Background(), b.CompanyID); company != nil {
		b.Company = *company
	}
	return b
}

func (f *fakeBuyerStore) FindAllWithPagination(_ context.Context, companyID uint, page, limit int) ([]model.Buyer, error) {
	f.listCalls++

	var owned []model.Buyer
	for _, b := range f.buyers {
		if b.CompanyID == companyID {
			owned = append(owned, f.withCompany(b))
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	offset := (page - 1) * limit
	if offset >= len(owned) {
		return []model.Buyer{}, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (f *fakeBuyerStore) FindByID(_ context.Context, id uint) (*model.Buyer, error) {
	b, ok := f.buyers[id]
	if !ok {
		return nil, nil
	}
	b = f.withCompany(b)
	return &b, nil
}

func (f *fakeBuyerStore) Create(ctx context.Context, buyer *model.Buyer) error {
	f.createCalls++
	buyer.ID = f.nextID
	f.nextID++
	f.buyers[buyer.ID] = *buyer
	f.invalidator.InvalidateTags(ctx, cache.TagBuyers)
	return nil
}

func (f *fakeBuyerStore) Save(ctx context.Context, buyer *model.Buyer) error {
	f.saveCalls++
	f.buyers[buyer.ID] = *buyer
	f.invalidator.InvalidateTags(ctx, cache.TagBuyers)
	return nil
}

func (f *fakeBuyerStore) Delete(ctx context.Context, buyer *model.Buyer) error {
	f.deleteCalls++
	delete(f.buyers, buyer.ID)
	f.invalidator.InvalidateTags(ctx, cache.TagBuyers)
	return nil
}

func (f *fakeBuyerStore) mutations() int {
	return f.createCalls + f.saveCalls + f.deleteCalls
}

// fakeProductStore is an in-memory ProductStore
type fakeProductStore struct {
	products  []model.Product
	listCalls int
}

func (f *fakeProductStore) FindAllWithPagination(_ context.Context, page, limit int) ([]model.Product, error) {
	f.listCalls++
	offset := (page - 1) * limit
	if offset >= len(f.products) {
		return []model.Product{}, nil
	}
	end := offset + limit
	if end > len(f.products) {
		end = len(f.products)
	}
	return f.products[offset:end], nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id uint) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// testApp bundles a fully wired echo instance over fake stores
type testApp struct {
	e         *echo.Echo
	jwt       *jwtutil.JWTUtil
	store     *cache.Store
	companies *fakeCompanyStore
	buyers    *fakeBuyerStore
	products  *fakeProductStore
}

// bcrypt hash of "password", cost 10
const passwordHash = "$2a$10$GCzGqrj6UkjG1BhXkIuqT.zdgw9HzH3LUkeAXza7.CA9Yb8ZCMbJS"

func newTestApp() *testApp {
	companies := &fakeCompanyStore{companies: []model.Company{
		{ID: 1, Email: "contact@techwave.io", Name: "TechWave", Password: passwordHash, Roles: model.RoleAdmin},
		{ID: 2, Email: "sales@northgate.com", Name: "Northgate", Password: passwordHash, Roles: model.RoleAdmin},
	}}

	store := cache.New(config.CacheConfig{Capacity: 100, NumShards: 2, TTL: time.Hour})
	buyers := newFakeBuyerStore(companies, store)
	products := &fakeProductStore{}

	jwt := jwtutil.New(&jwtutil.JWTConfig{SigningKey: "handler-test-key", ExpirationHours: 1})
	guard := auth.NewGuard(companies, jwt)

	buyerHandler := NewBuyerHandler(buyers, companies, guard, store)
	productHandler := NewProductHandler(products, store)
	authHandler := NewAuthHandler(companies, jwt)

	e := echo.New()
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = HTTPErrorHandler

	e.GET("/", Default)
	e.GET("/api/doc", Doc)
	e.GET("/health", Health)
	e.POST("/api/login_check", authHandler.Login)
	e.GET("/api/buyers", buyerHandler.List)
	e.GET("/api/buyer/:id", buyerHandler.Detail)
	e.POST("/api/buyer", buyerHandler.Create)
	e.PUT("/api/buyer/:id", buyerHandler.Update)
	e.DELETE("/api/buyer/:id", buyerHandler.Delete)
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Detail)

	return &testApp{e: e, jwt: jwt, store: store, companies: companies, buyers: buyers, products: products}
}

// seedBuyer inserts a buyer directly into the fake store without touching
// the cache, as if it pre-existed the test.
func (a *testApp) seedBuyer(companyID uint, firstname string) uint {
	id := a.buyers.nextID
	a.buyers.nextID++
	a.buyers.buyers[id] = model.Buyer{
		ID:        id,
		Firstname: firstname,
		Lastname:  "Fixture",
		Email:     firstname + "@example.com",
		Address:   "1 Test Street",
		Phone:     "+3300000000",
		CompanyID: companyID,
	}
	return id
}

func (a *testApp) token(email string) string {
	token, err := a.jwt.GenerateToken(email)
	if err != nil {
		panic(err)
	}
	return token
}
