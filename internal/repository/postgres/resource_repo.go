package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/teen-support/internal/domain/entity"
)

// ResourceRepo реализует repository.ResourceRepository
type ResourceRepo struct {
	db *gorm.DB
}

// NewResourceRepo создает новый репозиторий ресурсов поддержки
func NewResourceRepo(db *gorm.DB) *ResourceRepo {
	return &ResourceRepo{db: db}
}

// GetAll возвращает все ресурсы, сгруппированные по городу и типу
func (r *ResourceRepo) GetAll() ([]entity.SupportResource, error) {
	var resources []entity.SupportResource
	err := r.db.Order("city").
		Order("type").
		Order("name").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// GetByType возвращает ресурсы одного типа
func (r *ResourceRepo) GetByType(resourceType string) ([]entity.SupportResource, error) {
	var resources []entity.SupportResource
	err := r.db.Where("type = ?", resourceType).
		Order("city").
		Order("name").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// GetByCity ищет ресурсы по подстроке названия города
func (r *ResourceRepo) GetByCity(city string) ([]entity.SupportResource, error) {
	var resources []entity.SupportResource
	err := r.db.Where("city ILIKE ?", "%"+city+"%").
		Order("type").
		Order("name").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// GetAvailable247 возвращает круглосуточно доступные ресурсы
func (r *ResourceRepo) GetAvailable247() ([]entity.SupportResource, error) {
	var resources []entity.SupportResource
	err := r.db.Where("is_available_24_7 = TRUE").
		Order("type").
		Order("city").
		Order("name").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// Cities возвращает список городов с ресурсами
func (r *ResourceRepo) Cities() ([]string, error) {
	var cities []string
	err := r.db.Model(&entity.SupportResource{}).
		Where("city IS NOT NULL AND city <> ''").
		Distinct("city").
		Order("city").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

// Types возвращает список типов ресурсов
func (r *ResourceRepo) Types() ([]string, error) {
	var types []string
	err := r.db.Model(&entity.SupportResource{}).
		Distinct("type").
		Order("type").
		Pluck("type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

// Count возвращает количество ресурсов
func (r *ResourceRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.SupportResource{}).Count(&count).Error
	return count, err
}

// CreateBatch создает пакет ресурсов (загрузка справочника по умолчанию)
func (r *ResourceRepo) CreateBatch(resources []entity.SupportResource) error {
	return r.db.Create(&resources).Error
}
