// internal/database/seed.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/models"
)

// SeedSampleData populates an empty database with demo users and passports.
// It is invoked by cmd/seed only, never from the server runtime, and is a
// no-op when users already exist.
func SeedSampleData(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if userCount > 0 {
		logrus.Info("Database already seeded, skipping")
		return nil
	}

	logrus.Info("Seeding sample data...")

	type seedUser struct {
		name       string
		email      string
		password   string
		influencer bool
	}

	seedUsers := []seedUser{
		{"Jan Kowalski", "jan.kowalski@example.com", "Password123", false},
		{"Anna Nowak", "anna.nowak@example.com", "Password123", false},
		{"Piotr Wisniewski", "piotr.wisniewski@example.com", "Password123", false},
		{"Marta Stylowa", "marta.stylowa@example.com", "Influencer123", true},
		{"Karol Modny", "karol.modny@example.com", "Influencer123", true},
	}

	return WithTransaction(db, func(tx *gorm.DB) error {
		users := make([]*models.User, 0, len(seedUsers))
		for _, su := range seedUsers {
			user := &models.User{
				Name:         su.name,
				Email:        su.email,
				IsInfluencer: su.influencer,
			}
			if err := user.SetPassword(su.password); err != nil {
				return fmt.Errorf("failed to hash seed password: %w", err)
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("failed to create seed user %s: %w", su.email, err)
			}
			users = append(users, user)
		}

		passports := []*models.ProductPassport{
			samplePassport(users[0], "1234567890123", "Organic cotton t-shirt", "T-Shirts", "EkoUbrania", "Basic Tee 2024",
				"Organic Cotton", 95, "Elastane", 5, 12.5, 150.0, 45.0, 80.0),
			samplePassport(users[0], "2345678901234", "Recycled denim jeans", "Trousers", "Zielony Denim", "Slim Fit Eco",
				"Recycled Cotton", 80, "Polyester", 20, 25.8, 2500.0, 120.0, 65.0),
			samplePassport(users[1], "3456789012345", "Hemp hoodie", "Hoodies", "Konopie Co", "Cozy Hemp",
				"Hemp", 70, "Organic Cotton", 30, 8.2, 300.0, 30.0, 90.0),
			samplePassport(users[3], "4567890123456", "Linen summer dress", "Dresses", "Marta Collection", "Breeze 2024",
				"Linen", 90, "Viscose", 10, 6.1, 200.0, 20.0, 85.0),
			samplePassport(users[4], "5678901234567", "Wool winter coat", "Coats", "Modny Design", "Nordic Wool",
				"Wool", 85, "Recycled Polyester", 15, 32.0, 800.0, 95.0, 70.0),
		}

		for _, passport := range passports {
			if err := tx.Create(passport).Error; err != nil {
				return fmt.Errorf("failed to create seed passport %s: %w", passport.ProductInformation.GTIN, err)
			}
		}

		logrus.WithFields(logrus.Fields{
			"users":     len(users),
			"passports": len(passports),
		}).Info("Sample data seeded")
		return nil
	})
}

// samplePassport builds a demo passport with one primary and one secondary
// material, the shape the demo data always uses.
func samplePassport(owner *models.User, gtin, name, category, brand, model,
	primary string, primaryPct float64, secondary string, secondaryPct float64,
	carbonKg, waterLiters, energyKwh, recyclabilityPct float64) *models.ProductPassport {

	now := time.Now().UTC().Format(time.RFC3339)

	return &models.ProductPassport{
		OwnerID: owner.ID,
		ProductInformation: models.ProductInformation{
			GTIN:     gtin,
			Name:     name,
			Category: category,
			Brand:    brand,
			Model:    model,
		},
		Materials: models.MaterialCompositions{
			{MaterialName: primary, CompositionPercentage: primaryPct, Certifications: []string{"GOTS"}},
			{MaterialName: secondary, CompositionPercentage: secondaryPct, Certifications: []string{}},
		},
		EnvironmentImpact: models.EnvironmentImpact{
			CarbonFootprintKg:   carbonKg,
			WaterUsageLiters:    waterLiters,
			EnergyKwh:           energyKwh,
			RecycledContentPct:  30,
			HazardousSubstances: []string{},
		},
		Manufacturing: models.Manufacturing{
			Producer: models.Producer{
				Name:    brand,
				Address: "ul. Przykladowa 1, Warszawa",
				Contact: "kontakt@" + gtin + ".example.com",
			},
			ProductionSites: models.ProductionSites{
				{Country: "Poland", FacilityID: "PL-" + gtin[:4], Processes: []string{"cutting", "sewing"}},
			},
			ManufacturingDate: "2024-03-01",
		},
		DurabilityAndCare: models.DurabilityAndCare{
			ExpectedLifetimeCycles: 100,
			WashInstructions:       "Machine wash cold, line dry",
			Repairability: models.Repairability{
				Difficulty:          "low",
				SparePartsAvailable: true,
				GuideURL:            "https://repair.example.com/" + gtin,
			},
		},
		EndOfLife: models.EndOfLife{
			RecyclabilityPct: recyclabilityPct,
			DisassemblyURL:   "https://disassembly.example.com/" + gtin,
			TakeBackPrograms: models.TakeBackPrograms{
				{Name: brand + " Take-Back", URL: "https://takeback.example.com/" + gtin},
			},
		},
		SupplyChain: models.SupplyChainStages{
			{Stage: "fiber", Supplier: "EcoFiber Sp. z o.o.", Country: "Poland", Certificate: "GOTS"},
			{Stage: "assembly", Supplier: brand, Country: "Poland", Certificate: ""},
		},
		Metadata: models.Metadata{
			PassportCreated:     now,
			PassportLastUpdated: now,
			DataOwner:           brand,
		},
	}
}
