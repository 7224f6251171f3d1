package entity

import "time"

// UserProgress отслеживает прохождение учебных модулей пользователем
type UserProgress struct {
	ID             uint       `gorm:"primaryKey;column:progress_id" json:"id"`
	Username       string     `gorm:"size:20;not null;index:idx_progress_user_module,unique" json:"username"`
	ModuleID       uint       `gorm:"not null;index:idx_progress_user_module,unique" json:"module_id"`
	Completed      bool       `gorm:"not null;default:false" json:"completed"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	Score          int        `gorm:"not null;default:0" json:"score"`
}

// TableName определяет имя таблицы для GORM
func (UserProgress) TableName() string {
	return "user_progress"
}
