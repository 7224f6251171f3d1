package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/teen-support/internal/domain/entity"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// CounselingRepo реализует repository.CounselingRepository
type CounselingRepo struct {
	db *gorm.DB
}

// NewCounselingRepo создает новый репозиторий консультационных сессий
func NewCounselingRepo(db *gorm.DB) *CounselingRepo {
	return &CounselingRepo{db: db}
}

// Create создает новую сессию
func (r *CounselingRepo) Create(session *entity.CounselingSession) error {
	return r.db.Create(session).Error
}

// GetByID возвращает сессию по ID
func (r *CounselingRepo) GetByID(id uint) (*entity.CounselingSession, error) {
	var session entity.CounselingSession
	err := r.db.First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// GetByUsername возвращает сессии пользователя, поздние даты первыми
func (r *CounselingRepo) GetByUsername(username string) ([]entity.CounselingSession, error) {
	var sessions []entity.CounselingSession
	err := r.db.Where("username = ?", username).
		Order("preferred_date DESC").
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetAll возвращает все сессии (для консультанта)
func (r *CounselingRepo) GetAll() ([]entity.CounselingSession, error) {
	var sessions []entity.CounselingSession
	err := r.db.Order("preferred_date DESC").
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// Update сохраняет измененную сессию
func (r *CounselingRepo) Update(session *entity.CounselingSession) error {
	return r.db.Save(session).Error
}

// UpdateStatus обновляет только статус сессии
func (r *CounselingRepo) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&entity.CounselingSession{}).
		Where("session_id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete удаляет сессию
func (r *CounselingRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.CounselingSession{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
