package repository

import (
	"time"

	"github.com/yourusername/teen-support/internal/domain/entity"
)

// ProgressSummaryRow — агрегированная сводка прогресса пользователя
type ProgressSummaryRow struct {
	TotalModules     int64   `gorm:"column:total_modules"`
	CompletedModules int64   `gorm:"column:completed_modules"`
	AverageScore     float64 `gorm:"column:average_score"`
}

// CompletedModuleRow — недавно пройденный модуль для сводки прогресса
type CompletedModuleRow struct {
	Title          string     `gorm:"column:title"`
	CompletionDate *time.Time `gorm:"column:completion_date"`
	Score          int        `gorm:"column:score"`
}

// ModuleRepository определяет методы для работы с учебными модулями
type ModuleRepository interface {
	// GetAll возвращает модули, сгруппированные по категории и сложности
	GetAll() ([]entity.EducationalModule, error)
	GetByID(id uint) (*entity.EducationalModule, error)
	GetByCategory(category string) ([]entity.EducationalModule, error)
	Categories() ([]string, error)
	Count() (int64, error)

	// CreateBatch используется для загрузки модулей по умолчанию
	CreateBatch(modules []entity.EducationalModule) error
}

// ProgressRepository определяет методы для работы с прогрессом обучения
type ProgressRepository interface {
	// MarkCompleted отмечает модуль пройденным: обновляет существующую запись
	// или создает новую
	MarkCompleted(username string, moduleID uint, score int) error

	Summary(username string) (*ProgressSummaryRow, error)
	RecentCompleted(username string, limit int) ([]CompletedModuleRow, error)
}
