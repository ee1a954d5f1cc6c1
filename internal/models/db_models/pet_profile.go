package db_models

import "github.com/google/uuid"

// PetProfile is the single pet attached to an account.
type PetProfile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Type      string    `gorm:"size:16;default:other"`
	Name      string    `gorm:"size:64"`
	NameEn    string    `gorm:"size:64"`
}
