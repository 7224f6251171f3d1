package repository

import (
	"time"

	"github.com/yourusername/teen-support/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(user *entity.User) error

	// GetByUsername возвращает активного пользователя по имени
	GetByUsername(username string) (*entity.User, error)

	// Exists проверяет занятость имени независимо от флага is_active
	Exists(username string) (bool, error)

	UpdateLastLogin(username string, at time.Time) error

	// Deactivate выполняет мягкое удаление аккаунта (is_active = false)
	Deactivate(username string) error

	CountActive() (int64, error)
}
