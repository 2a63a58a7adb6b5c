// internal/models/sharing.go
package models

import "github.com/google/uuid"

// ShareToken grants any holder of its code a link to the issuer's wardrobe.
// Tokens are created on demand, never mutated and never expire; a single code
// may be redeemed any number of times. The issuer is a plain foreign key,
// resolved through the user directory when needed.
type ShareToken struct {
	BaseModel
	Code     string    `json:"code" gorm:"uniqueIndex;size:64;not null"`
	IssuerID uuid.UUID `json:"issuer_id" gorm:"type:uuid;not null;index"`
}

// SavedLink is a directed viewer -> owner edge created by redeeming a share
// code. Redeeming the same code twice from the same viewer produces two rows;
// deduplication is intentionally not enforced.
type SavedLink struct {
	BaseModel
	ViewerID uuid.UUID `json:"viewer_id" gorm:"type:uuid;not null;index"`
	OwnerID  uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
}
