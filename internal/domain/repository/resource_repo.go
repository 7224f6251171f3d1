package repository

import (
	"github.com/yourusername/teen-support/internal/domain/entity"
)

// ResourceRepository определяет методы для работы с ресурсами поддержки
type ResourceRepository interface {
	GetAll() ([]entity.SupportResource, error)
	GetByType(resourceType string) ([]entity.SupportResource, error)

	// GetByCity ищет по подстроке названия города
	GetByCity(city string) ([]entity.SupportResource, error)

	GetAvailable247() ([]entity.SupportResource, error)
	Cities() ([]string, error)
	Types() ([]string, error)
	Count() (int64, error)

	// CreateBatch используется для загрузки справочника по умолчанию
	CreateBatch(resources []entity.SupportResource) error
}
