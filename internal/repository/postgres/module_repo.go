package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// ModuleRepo реализует repository.ModuleRepository
type ModuleRepo struct {
	db *gorm.DB
}

// NewModuleRepo создает новый репозиторий учебных модулей
func NewModuleRepo(db *gorm.DB) *ModuleRepo {
	return &ModuleRepo{db: db}
}

// GetAll возвращает модули, сгруппированные по категории и сложности
func (r *ModuleRepo) GetAll() ([]entity.EducationalModule, error) {
	var modules []entity.EducationalModule
	err := r.db.Order("category").
		Order("difficulty_level").
		Order("title").
		Find(&modules).Error
	if err != nil {
		return nil, err
	}
	return modules, nil
}

// GetByID возвращает модуль по ID
func (r *ModuleRepo) GetByID(id uint) (*entity.EducationalModule, error) {
	var module entity.EducationalModule
	err := r.db.First(&module, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &module, nil
}

// GetByCategory возвращает модули одной категории
func (r *ModuleRepo) GetByCategory(category string) ([]entity.EducationalModule, error) {
	var modules []entity.EducationalModule
	err := r.db.Where("category = ?", category).
		Order("difficulty_level").
		Order("title").
		Find(&modules).Error
	if err != nil {
		return nil, err
	}
	return modules, nil
}

// Categories возвращает список категорий модулей
func (r *ModuleRepo) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&entity.EducationalModule{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Count возвращает количество модулей
func (r *ModuleRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.EducationalModule{}).Count(&count).Error
	return count, err
}

// CreateBatch создает пакет модулей (загрузка контента по умолчанию)
func (r *ModuleRepo) CreateBatch(modules []entity.EducationalModule) error {
	return r.db.Create(&modules).Error
}

// ProgressRepo реализует repository.ProgressRepository
type ProgressRepo struct {
	db *gorm.DB
}

// NewProgressRepo создает новый репозиторий прогресса обучения
func NewProgressRepo(db *gorm.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// MarkCompleted отмечает модуль пройденным (update-or-insert)
func (r *ProgressRepo) MarkCompleted(username string, moduleID uint, score int) error {
	return r.db.Exec(`
		INSERT INTO user_progress (username, module_id, completed, completion_date, score)
		VALUES (?, ?, TRUE, NOW(), ?)
		ON CONFLICT (username, module_id) DO UPDATE
		SET completed = TRUE, completion_date = NOW(), score = EXCLUDED.score
	`, username, moduleID, score).Error
}

// Summary возвращает сводку прогресса пользователя
func (r *ProgressRepo) Summary(username string) (*repository.ProgressSummaryRow, error) {
	var row repository.ProgressSummaryRow
	err := r.db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM educational_modules) AS total_modules,
			COUNT(*) FILTER (WHERE completed = TRUE) AS completed_modules,
			COALESCE(AVG(score) FILTER (WHERE completed = TRUE AND score > 0), 0) AS average_score
		FROM user_progress
		WHERE username = ?
	`, username).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// RecentCompleted возвращает недавно пройденные модули
func (r *ProgressRepo) RecentCompleted(username string, limit int) ([]repository.CompletedModuleRow, error) {
	var rows []repository.CompletedModuleRow
	err := r.db.Raw(`
		SELECT em.title, up.completion_date, up.score
		FROM user_progress up
		JOIN educational_modules em ON up.module_id = em.module_id
		WHERE up.username = ? AND up.completed = TRUE
		ORDER BY up.completion_date DESC
		LIMIT ?
	`, username, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
