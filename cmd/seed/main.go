package main

import (
	"fmt"

	"buyer-service/internal/model"
	"buyer-service/pkg/config"
	"buyer-service/pkg/database"
	"buyer-service/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type companyFixture struct {
	email    string
	name     string
	password string
	buyers   []model.Buyer
}

var companyFixtures = []companyFixture{
	{
		email:    "contact@techwave.io",
		name:     "TechWave",
		password: "password",
		buyers: []model.Buyer{
			{Firstname: "Alice", Lastname: "Martin", Email: "alice.martin@example.com", Address: "12 rue des Lilas, Paris", Phone: "+33102030405"},
			{Firstname: "Bruno", Lastname: "Keller", Email: "bruno.keller@example.com", Address: "8 avenue Foch, Lyon", Phone: "+33405060708"},
			{Firstname: "Chloe", Lastname: "Nguyen", Email: "chloe.nguyen@example.com", Address: "3 place Bellecour, Lyon", Phone: "+33611223344"},
		},
	},
	{
		email:    "sales@northgate.com",
		name:     "Northgate",
		password: "password",
		buyers: []model.Buyer{
			{Firstname: "Diego", Lastname: "Alvarez", Email: "diego.alvarez@example.com", Address: "27 boulevard Haussmann, Paris", Phone: "+33755667788"},
			{Firstname: "Emma", Lastname: "Sorel", Email: "emma.sorel@example.com", Address: "5 quai Branly, Paris", Phone: "+33699887766"},
		},
	},
}

func main() {
	appConfig, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	db := database.GetDB()

	for _, fixture := range companyFixtures {
		hash, err := bcrypt.GenerateFromPassword([]byte(fixture.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash password", zap.Error(err))
		}

		company := model.Company{
			Email:    fixture.email,
			Name:     fixture.name,
			Password: string(hash),
			Roles:    model.RoleAdmin,
			Buyers:   fixture.buyers,
		}
		if err := db.Create(&company).Error; err != nil {
			log.Fatal("Failed to seed company", zap.String("email", fixture.email), zap.Error(err))
		}
		log.Info("Seeded company",
			zap.String("email", company.Email),
			zap.Int("buyers", len(company.Buyers)))
	}

	for i := 1; i <= 20; i++ {
		product := model.Product{
			Label:       fmt.Sprintf("Handset %02d", i),
			Description: fmt.Sprintf("Catalog reference %02d, dual-sim handset with one year warranty.", i),
			Price:       99.90 + float64(i)*25,
		}
		if err := db.Create(&product).Error; err != nil {
			log.Fatal("Failed to seed product", zap.Error(err))
		}
	}

	log.Info("Seed completed")
}
