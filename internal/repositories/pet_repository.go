package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pawtrip/internal/models/db_models"
)

type PetRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.PetProfile, error)
	Upsert(ctx context.Context, pet *db_models.PetProfile) error
}

type petRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

// FindByAccountID returns nil, nil when the account has no pet yet.
func (p *petRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.PetProfile, error) {
	var pet db_models.PetProfile
	err := p.db.WithContext(ctx).First(&pet, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &pet, nil
}

func (p *petRepository) Upsert(ctx context.Context, pet *db_models.PetProfile) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "name", "name_en", "updated_at"}),
		}).
		Create(pet).Error
}
