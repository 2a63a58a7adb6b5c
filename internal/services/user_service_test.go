// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/models"
)

type UserServiceTestSuite struct {
	suite.Suite
	db    *gorm.DB
	users *UserService
}

func (s *UserServiceTestSuite) SetupSuite() {
	s.db = setupTestDB(s.T())
	s.users = NewUserService(s.db)
}

func (s *UserServiceTestSuite) SetupTest() {
	truncateAll(s.T(), s.db)
}

func (s *UserServiceTestSuite) TestCreateUser() {
	user := createTestUser(s.T(), s.users, "jan@example.com", "Jan Kowalski")

	s.NotEqual(uuid.Nil, user.ID)
	s.Equal("jan@example.com", user.Email)
	s.False(user.IsInfluencer)
	s.NoError(user.CheckPassword("Password123"))
}

func (s *UserServiceTestSuite) TestCreateUserWeakPassword() {
	_, err := s.users.CreateUser(&CreateUserRequest{
		Email:    "jan@example.com",
		Name:     "Jan Kowalski",
		Password: "password123",
	})
	s.Error(err)

	_, err = s.users.GetUserByEmail("jan@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestCreateUserDuplicateEmail() {
	createTestUser(s.T(), s.users, "jan@example.com", "Jan Kowalski")

	_, err := s.users.CreateUser(&CreateUserRequest{
		Email:    "jan@example.com",
		Name:     "Another Jan",
		Password: "Password123",
	})
	s.ErrorIs(err, ErrDuplicateEmail)
}

func (s *UserServiceTestSuite) TestGetUserNotFound() {
	_, err := s.users.GetUser(uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestAddProduct() {
	user := createTestUser(s.T(), s.users, "jan@example.com", "Jan Kowalski")

	passport, err := s.users.AddProduct(user.ID, testPassportRequest("1234567890123"))
	s.Require().NoError(err)

	s.NotEqual(uuid.Nil, passport.ID)
	s.Equal(user.ID, passport.OwnerID)
	s.NotEmpty(passport.Metadata.PassportCreated)
	s.Equal(passport.Metadata.PassportCreated, passport.Metadata.PassportLastUpdated)

	// Nested structures come back exactly as supplied.
	fetched, err := s.users.GetProduct(passport.ID)
	s.Require().NoError(err)
	s.Len(fetched.Materials, 2)
	s.Equal("Organic Cotton", fetched.Materials[0].MaterialName)
	s.Equal([]string{"GOTS"}, fetched.Materials[0].Certifications)
}

func (s *UserServiceTestSuite) TestAddProductCompositionOutOfRange() {
	user := createTestUser(s.T(), s.users, "jan@example.com", "Jan Kowalski")

	req := testPassportRequest("1234567890123")
	req.Materials[0].CompositionPercentage = 101

	_, err := s.users.AddProduct(user.ID, req)
	var validationErr *models.ValidationError
	s.ErrorAs(err, &validationErr)

	products, listErr := s.users.ListProductsFor(user.ID)
	s.Require().NoError(listErr)
	s.Empty(products)
}

func (s *UserServiceTestSuite) TestAddProductCompositionBoundary() {
	user := createTestUser(s.T(), s.users, "jan@example.com", "Jan Kowalski")

	req := testPassportRequest("1234567890123")
	req.Materials[0].CompositionPercentage = 100

	_, err := s.users.AddProduct(user.ID, req)
	s.NoError(err)
}

func (s *UserServiceTestSuite) TestAddProductEmptyGTIN() {
	user := createTestUser(s.T(), s.users, "jan@example.com", "Jan Kowalski")

	req := testPassportRequest("")
	_, err := s.users.AddProduct(user.ID, req)

	var validationErr *models.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal("gtin", validationErr.Field)
}

func (s *UserServiceTestSuite) TestAddProductUnknownUser() {
	_, err := s.users.AddProduct(uuid.New(), testPassportRequest("1234567890123"))
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestListInfluencers() {
	createTestUser(s.T(), s.users, "regular@example.com", "Regular")
	influencer := createTestUser(s.T(), s.users, "marta@example.com", "Marta Stylowa")
	markInfluencer(s.T(), s.db, influencer)

	influencers, err := s.users.ListInfluencers()
	s.Require().NoError(err)
	s.Len(influencers, 1)
	s.Equal("marta@example.com", influencers[0].Email)
}

func (s *UserServiceTestSuite) TestSetProfilePicture() {
	user := createTestUser(s.T(), s.users, "jan@example.com", "Jan Kowalski")

	picture := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	updated, err := s.users.SetProfilePicture(user.ID, picture)
	s.Require().NoError(err)
	s.Equal(picture, updated.ProfilePicture)
}

func (s *UserServiceTestSuite) TestModifyPreferences() {
	user := createTestUser(s.T(), s.users, "jan@example.com", "Jan Kowalski")

	updated, err := s.users.ModifyPreferences(user.ID, &ModifyPreferencesRequest{
		Allergies:          []string{"wool"},
		PreferredMaterials: []string{"organic cotton", "linen"},
	})
	s.Require().NoError(err)
	s.EqualValues([]string{"wool"}, updated.Preference.Allergies)
	s.EqualValues([]string{"organic cotton", "linen"}, updated.Preference.PreferredMaterials)
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
