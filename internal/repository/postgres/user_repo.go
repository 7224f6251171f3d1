package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/teen-support/internal/domain/entity"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create создает нового пользователя
func (r *UserRepo) Create(user *entity.User) error {
	return r.db.Create(user).Error
}

// GetByUsername возвращает активного пользователя по имени
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("username = ? AND is_active = TRUE", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Exists проверяет занятость имени независимо от флага is_active.
// Деактивированные имена остаются занятыми.
func (r *UserRepo) Exists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateLastLogin обновляет время последнего входа
func (r *UserRepo) UpdateLastLogin(username string, at time.Time) error {
	result := r.db.Model(&entity.User{}).
		Where("username = ?", username).
		Update("last_login", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Deactivate выполняет мягкое удаление аккаунта
func (r *UserRepo) Deactivate(username string) error {
	result := r.db.Model(&entity.User{}).
		Where("username = ?", username).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountActive возвращает количество активных пользователей
func (r *UserRepo) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&entity.User{}).
		Where("is_active = TRUE").
		Count(&count).Error
	return count, err
}
