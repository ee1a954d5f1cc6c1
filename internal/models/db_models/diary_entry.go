package db_models

import "github.com/google/uuid"

// DiaryEntry keeps the image and story generated for one trip activity.
// A failed half leaves its field empty.
type DiaryEntry struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"type:uuid;index"`
	ActivityID string    `gorm:"size:64"`
	City       string
	Location   string
	Locale     string `gorm:"size:8"`
	ImageURL   string `gorm:"type:text"`
	Story      string `gorm:"type:text"`
}
