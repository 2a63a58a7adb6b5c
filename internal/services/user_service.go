// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/models"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/utils"
)

// UserService is the user directory: identity, owned passports and the
// influencer flag. Collections hang off the user through foreign keys and are
// fetched with the explicit List* queries below.
type UserService struct {
	db *gorm.DB
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=255"`
	Password string `json:"password" validate:"required,strong_password"`
}

type CreatePassportRequest struct {
	ProductInformation models.ProductInformation   `json:"product_information" validate:"required"`
	Materials          models.MaterialCompositions `json:"material_compositions"`
	EnvironmentImpact  models.EnvironmentImpact    `json:"environment_impact"`
	Manufacturing      models.Manufacturing        `json:"manufacturing"`
	DurabilityAndCare  models.DurabilityAndCare    `json:"durability_and_care"`
	EndOfLife          models.EndOfLife            `json:"end_of_life"`
	SupplyChain        models.SupplyChainStages    `json:"supply_chain"`
	DataOwner          string                      `json:"data_owner"`
	Image              []byte                      `json:"image,omitempty"`
}

type ModifyPreferencesRequest struct {
	Allergies          []string `json:"allergies"`
	PreferredMaterials []string `json:"preferred_materials"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user := &models.User{
		Email: req.Email,
		Name:  req.Name,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique index on email is the authority on duplicates, so two
	// concurrent registrations cannot both succeed.
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

// AddProduct assembles a passport from the request, stamps identity and
// timestamps, and inserts it for the given owner. The nested structures are
// stored verbatim; only the range checks in Validate apply.
func (s *UserService) AddProduct(userID uuid.UUID, req *CreatePassportRequest) (*models.ProductPassport, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	passport := &models.ProductPassport{
		OwnerID:            userID,
		ProductInformation: req.ProductInformation,
		Materials:          req.Materials,
		EnvironmentImpact:  req.EnvironmentImpact,
		Manufacturing:      req.Manufacturing,
		DurabilityAndCare:  req.DurabilityAndCare,
		EndOfLife:          req.EndOfLife,
		SupplyChain:        req.SupplyChain,
		Metadata: models.Metadata{
			PassportCreated:     now,
			PassportLastUpdated: now,
			DataOwner:           req.DataOwner,
		},
		Image: req.Image,
	}

	if err := passport.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var owner models.User
		if err := tx.First(&owner, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}
		if err := tx.Create(passport).Error; err != nil {
			return fmt.Errorf("failed to create passport: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return passport, nil
}

func (s *UserService) GetProduct(passportID uuid.UUID) (*models.ProductPassport, error) {
	var passport models.ProductPassport
	if err := s.db.First(&passport, passportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPassportNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &passport, nil
}

// ListProductsFor returns the owner's passports in insertion order.
func (s *UserService) ListProductsFor(userID uuid.UUID) ([]models.ProductPassport, error) {
	var passports []models.ProductPassport
	if err := s.db.Where("owner_id = ?", userID).
		Order("created_at, id").
		Find(&passports).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return passports, nil
}

// ListSavedLinksFor returns the viewer's saved-wardrobe edges, oldest first.
func (s *UserService) ListSavedLinksFor(userID uuid.UUID) ([]models.SavedLink, error) {
	var links []models.SavedLink
	if err := s.db.Where("viewer_id = ?", userID).
		Order("created_at, id").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return links, nil
}

// ListInfluencers returns every user flagged as an influencer. Ordering is
// fixed within a call so pagination-free consumers see a stable sequence.
func (s *UserService) ListInfluencers() ([]models.User, error) {
	var influencers []models.User
	if err := s.db.Where("is_influencer = ?", true).
		Order("created_at, id").
		Find(&influencers).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return influencers, nil
}

func (s *UserService) SetProfilePicture(userID uuid.UUID, picture []byte) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	user.ProfilePicture = picture
	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile picture: %w", err)
	}
	return user, nil
}

// ModifyPreferences replaces both preference sets in one transaction.
func (s *UserService) ModifyPreferences(userID uuid.UUID, req *ModifyPreferencesRequest) (*models.User, error) {
	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}
		user.Preference.Allergies = req.Allergies
		user.Preference.PreferredMaterials = req.PreferredMaterials
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed to update preferences: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
