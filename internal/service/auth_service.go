package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// AuthService предоставляет псевдонимную регистрацию и вход по имени.
// Пароля нет намеренно: имя не должно содержать персональных данных.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register создает нового пользователя.
// Имя должно быть свободно, включая имена деактивированных аккаунтов.
func (s *AuthService) Register(username string, age int) (*entity.User, error) {
	if !entity.ValidUsername(username) {
		return nil, fmt.Errorf("%w: имя должно быть 3-20 символов, начинаться с буквы и не содержать служебных слов", apperrors.ErrValidation)
	}
	if !entity.ValidAge(age) {
		return nil, fmt.Errorf("%w: возраст должен быть от %d до %d лет", apperrors.ErrValidation, entity.MinUserAge, entity.MaxUserAge)
	}

	taken, err := s.userRepo.Exists(username)
	if err != nil {
		log.Printf("[AuthService] Ошибка проверки имени %s: %v", username, err)
		return nil, fmt.Errorf("%w: не удалось проверить имя", apperrors.ErrUnavailable)
	}
	if taken {
		return nil, fmt.Errorf("%w: имя уже занято", apperrors.ErrConflict)
	}

	user := &entity.User{
		Username:  username,
		Age:       age,
		LastLogin: time.Now(),
		IsActive:  true,
	}

	if err := s.userRepo.Create(user); err != nil {
		log.Printf("[AuthService] Ошибка создания пользователя %s: %v", username, err)
		return nil, fmt.Errorf("%w: не удалось создать пользователя", apperrors.ErrUnavailable)
	}

	return user, nil
}

// SuggestUsernames подбирает свободные варианты занятого имени.
// Возвращает не больше limit вариантов; ошибки хранилища пропускаются,
// список просто получится короче.
func (s *AuthService) SuggestUsernames(base string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var suggestions []string
	for i := 1; i <= 99 && len(suggestions) < limit; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if !entity.ValidUsername(candidate) {
			continue
		}
		taken, err := s.userRepo.Exists(candidate)
		if err != nil || taken {
			continue
		}
		suggestions = append(suggestions, candidate)
	}
	return suggestions
}

// Login выполняет вход по имени и обновляет время последнего входа.
// Деактивированные аккаунты входить не могут.
func (s *AuthService) Login(username string) (*entity.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		log.Printf("[AuthService] Ошибка входа пользователя %s: %v", username, err)
		return nil, fmt.Errorf("%w: не удалось выполнить вход", apperrors.ErrUnavailable)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(username, now); err != nil {
		// Вход состоялся, отметка времени не критична
		log.Printf("[AuthService] Ошибка обновления времени входа %s: %v", username, err)
	} else {
		user.LastLogin = now
	}

	return user, nil
}

// Deactivate выполняет мягкое удаление аккаунта.
// Вопросы и ответы пользователя остаются в системе.
func (s *AuthService) Deactivate(username string) error {
	err := s.userRepo.Deactivate(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		log.Printf("[AuthService] Ошибка деактивации пользователя %s: %v", username, err)
		return fmt.Errorf("%w: не удалось деактивировать аккаунт", apperrors.ErrUnavailable)
	}
	return nil
}
