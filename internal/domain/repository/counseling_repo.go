package repository

import (
	"github.com/yourusername/teen-support/internal/domain/entity"
)

// CounselingRepository определяет методы для работы с консультационными сессиями
type CounselingRepository interface {
	Create(session *entity.CounselingSession) error
	GetByID(id uint) (*entity.CounselingSession, error)

	// GetByUsername возвращает сессии пользователя: ближайшие даты первыми
	GetByUsername(username string) ([]entity.CounselingSession, error)

	// GetAll возвращает все сессии (для консультанта/админа)
	GetAll() ([]entity.CounselingSession, error)

	Update(session *entity.CounselingSession) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}
