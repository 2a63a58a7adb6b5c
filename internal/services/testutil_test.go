// internal/services/testutil_test.go
package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/database"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/models"
)

// setupTestDB opens the database named by TEST_DATABASE_DSN and migrates it.
// Suites calling it are skipped when the variable is unset so the pure tests
// still run everywhere.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping database tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	return db
}

func truncateAll(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec("TRUNCATE users, product_passports, share_tokens, saved_links CASCADE").Error
	require.NoError(t, err)
}

func createTestUser(t *testing.T, svc *UserService, email, name string) *models.User {
	t.Helper()
	user, err := svc.CreateUser(&CreateUserRequest{
		Email:    email,
		Name:     name,
		Password: "Password123",
	})
	require.NoError(t, err)
	return user
}

func markInfluencer(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()
	user.IsInfluencer = true
	require.NoError(t, db.Save(user).Error)
}

// testPassportRequest builds a minimal valid passport payload.
func testPassportRequest(gtin string) *CreatePassportRequest {
	return &CreatePassportRequest{
		ProductInformation: models.ProductInformation{
			GTIN:     gtin,
			Name:     "Organic cotton t-shirt",
			Category: "T-Shirts",
			Brand:    "EkoUbrania",
			Model:    "Basic Tee",
		},
		Materials: models.MaterialCompositions{
			{MaterialName: "Organic Cotton", CompositionPercentage: 95, Certifications: []string{"GOTS"}},
			{MaterialName: "Elastane", CompositionPercentage: 5, Certifications: []string{}},
		},
		EnvironmentImpact: models.EnvironmentImpact{
			CarbonFootprintKg:   12.5,
			WaterUsageLiters:    150,
			EnergyKwh:           45,
			RecycledContentPct:  30,
			HazardousSubstances: []string{},
		},
		EndOfLife: models.EndOfLife{
			RecyclabilityPct: 80,
		},
		DataOwner: "EkoUbrania",
	}
}
