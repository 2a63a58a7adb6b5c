// internal/services/share_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/models"
)

// ShareService is the sharing ledger: it issues share codes and turns
// redemptions into saved-wardrobe links. Each redemption is an independent
// event; there is no per-pair state.
type ShareService struct {
	db *gorm.DB
}

func NewShareService(db *gorm.DB) *ShareService {
	return &ShareService{db: db}
}

// IssueShare creates a fresh token for the issuer. Codes are UUIDv4 strings,
// so collisions are negligible without a uniqueness retry loop; the unique
// index backstops the impossible case. Repeated calls create distinct tokens
// and every previously issued code stays valid.
func (s *ShareService) IssueShare(issuerID uuid.UUID) (*models.ShareToken, error) {
	var issuer models.User
	if err := s.db.First(&issuer, issuerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	token := &models.ShareToken{
		Code:     uuid.NewString(),
		IssuerID: issuer.ID,
	}
	if err := s.db.Create(token).Error; err != nil {
		return nil, fmt.Errorf("failed to create share token: %w", err)
	}
	return token, nil
}

// RedeemShare resolves the code to its issuer and records a viewer -> issuer
// link. The token is left untouched and can be redeemed again, by the same
// viewer included; a second redemption creates a second link. Redeeming one's
// own code is allowed.
func (s *ShareService) RedeemShare(code string, viewerID uuid.UUID) (*models.SavedLink, error) {
	var link *models.SavedLink
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var token models.ShareToken
		if err := tx.Where("code = ?", code).First(&token).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShareCodeNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		var viewer models.User
		if err := tx.First(&viewer, viewerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		link = &models.SavedLink{
			ViewerID: viewer.ID,
			OwnerID:  token.IssuerID,
		}
		if err := tx.Create(link).Error; err != nil {
			return fmt.Errorf("failed to create saved link: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}
