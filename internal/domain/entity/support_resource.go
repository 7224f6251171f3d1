package entity

import "time"

// Типы ресурсов поддержки
const (
	ResourceTypeClinic           = "clinic"
	ResourceTypeNGO              = "ngo"
	ResourceTypeHotline          = "hotline"
	ResourceTypeCounselingCenter = "counseling_center"
)

// SupportResource представляет локальный ресурс поддержки:
// клинику, NGO, горячую линию или консультационный центр.
type SupportResource struct {
	ID              uint      `gorm:"primaryKey;column:resource_id" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Type            string    `gorm:"size:32;not null;index" json:"type"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	Phone           string    `gorm:"size:32" json:"phone,omitempty"`
	Email           string    `gorm:"size:100" json:"email,omitempty"`
	Address         string    `gorm:"size:255" json:"address,omitempty"`
	City            string    `gorm:"size:100;index" json:"city,omitempty"`
	Country         string    `gorm:"size:100;not null;default:Rwanda" json:"country"`
	Website         string    `gorm:"size:255" json:"website,omitempty"`
	IsAvailable247  bool      `gorm:"column:is_available_24_7;not null;default:false" json:"is_available_24_7"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (SupportResource) TableName() string {
	return "support_resources"
}
