// internal/services/wardrobe_service.go
package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/models"
)

// WardrobeService answers "what can this user see": their own passports, the
// wardrobes behind their saved links, and every influencer's wardrobe.
type WardrobeService struct {
	db          *gorm.DB
	userService *UserService
}

// WardrobeEntry pairs an owner summary with that owner's passports as they
// exist at query time. Nothing here is cached or snapshotted.
type WardrobeEntry struct {
	Owner    models.UserSummary       `json:"owner"`
	Products []models.ProductPassport `json:"products"`
}

func NewWardrobeService(db *gorm.DB, userService *UserService) *WardrobeService {
	return &WardrobeService{db: db, userService: userService}
}

func (s *WardrobeService) GetOwnWardrobe(userID uuid.UUID) ([]models.ProductPassport, error) {
	if _, err := s.userService.GetUser(userID); err != nil {
		return nil, err
	}
	return s.userService.ListProductsFor(userID)
}

// GetSavedWardrobes resolves every saved link of the viewer to the owner's
// current products. One entry per link: a viewer who redeemed two codes from
// the same issuer gets that issuer twice.
func (s *WardrobeService) GetSavedWardrobes(viewerID uuid.UUID) ([]WardrobeEntry, error) {
	if _, err := s.userService.GetUser(viewerID); err != nil {
		return nil, err
	}

	links, err := s.userService.ListSavedLinksFor(viewerID)
	if err != nil {
		return nil, err
	}

	entries := make([]WardrobeEntry, 0, len(links))
	for _, link := range links {
		entry, err := s.entryFor(link.OwnerID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// GetInfluencerWardrobes returns an entry for every influencer, whether or
// not the caller holds a link to them.
func (s *WardrobeService) GetInfluencerWardrobes() ([]WardrobeEntry, error) {
	influencers, err := s.userService.ListInfluencers()
	if err != nil {
		return nil, err
	}

	entries := make([]WardrobeEntry, 0, len(influencers))
	for _, influencer := range influencers {
		products, err := s.userService.ListProductsFor(influencer.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, WardrobeEntry{
			Owner:    influencer.Summary(),
			Products: products,
		})
	}
	return entries, nil
}

func (s *WardrobeService) entryFor(ownerID uuid.UUID) (*WardrobeEntry, error) {
	owner, err := s.userService.GetUser(ownerID)
	if err != nil {
		return nil, err
	}
	products, err := s.userService.ListProductsFor(ownerID)
	if err != nil {
		return nil, err
	}
	return &WardrobeEntry{Owner: owner.Summary(), Products: products}, nil
}
