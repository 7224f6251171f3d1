package entity

import "time"

// Уровни сложности учебных модулей
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// EducationalModule представляет учебный модуль с образовательным контентом
type EducationalModule struct {
	ID              uint      `gorm:"primaryKey;column:module_id" json:"id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	Category        string    `gorm:"size:64;not null;index" json:"category"`
	DifficultyLevel string    `gorm:"size:16;not null;default:beginner" json:"difficulty_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (EducationalModule) TableName() string {
	return "educational_modules"
}
