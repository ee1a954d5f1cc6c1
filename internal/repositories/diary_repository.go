package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pawtrip/internal/models/db_models"
)

type DiaryRepository interface {
	Create(ctx context.Context, entry *db_models.DiaryEntry) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.DiaryEntry, error)
}

type diaryRepository struct {
	db *gorm.DB
}

func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

func (d *diaryRepository) Create(ctx context.Context, entry *db_models.DiaryEntry) error {
	return d.db.WithContext(ctx).Create(entry).Error
}

// ListByAccount pages through an account's diary, newest first. page is 1-based.
func (d *diaryRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.DiaryEntry, error) {
	var entries []db_models.DiaryEntry
	err := d.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Order("id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
