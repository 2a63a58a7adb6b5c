// internal/models/user.go
package models

import (
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Preference holds the wearer's material preferences, used when rendering
// another user's wardrobe (e.g. allergy warnings on saved wardrobes).
type Preference struct {
	Allergies          pq.StringArray `json:"allergies" gorm:"type:text[]"`
	PreferredMaterials pq.StringArray `json:"preferred_materials" gorm:"type:text[]"`
}

// User carries identity fields only. Owned passports, issued share tokens and
// saved links all point back at the user through foreign keys and are loaded
// through explicit queries, never as embedded collections.
type User struct {
	BaseModel
	Email          string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name           string     `json:"name" gorm:"size:255;not null"`
	PasswordHash   string     `json:"-" gorm:"size:255;not null"`
	IsInfluencer   bool       `json:"is_influencer" gorm:"default:false;index"`
	ProfilePicture []byte     `json:"profile_picture,omitempty" gorm:"type:bytea"`
	Preference     Preference `json:"preference" gorm:"embedded;embeddedPrefix:pref_"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// Summary is the minimal owner identity attached to wardrobe responses.
type UserSummary struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	ProfilePicture []byte     `json:"profile_picture,omitempty"`
	IsInfluencer   bool       `json:"is_influencer"`
	Preference     Preference `json:"preference"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID.String(),
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
		IsInfluencer:   u.IsInfluencer,
		Preference:     u.Preference,
	}
}
