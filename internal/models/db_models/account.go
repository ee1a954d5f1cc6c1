package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	Pet   *PetProfile  `gorm:"foreignKey:AccountID"`
	Diary []DiaryEntry `gorm:"foreignKey:AccountID"`
}
