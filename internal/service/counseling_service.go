package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
	"github.com/yourusername/teen-support/internal/pkg/sanitize"
)

// CounselingService предоставляет запись на консультации
type CounselingService struct {
	counselingRepo repository.CounselingRepository
}

// NewCounselingService создает новый сервис консультаций
func NewCounselingService(counselingRepo repository.CounselingRepository) *CounselingService {
	return &CounselingService{counselingRepo: counselingRepo}
}

// Schedule создает запись на консультацию.
// Пустое имя клиента заменяется на "Anonymous".
func (s *CounselingService) Schedule(username, clientName, topic string, preferredDate time.Time) (*entity.CounselingSession, error) {
	clientName = strings.TrimSpace(sanitize.Text(clientName))
	if clientName == "" {
		clientName = entity.AnonymousClientName
	}

	topic = strings.TrimSpace(sanitize.Text(topic))
	if topic == "" {
		return nil, fmt.Errorf("%w: тема консультации обязательна", apperrors.ErrValidation)
	}

	session := &entity.CounselingSession{
		Username:      username,
		ClientName:    clientName,
		Topic:         topic,
		PreferredDate: preferredDate,
		Status:        entity.SessionStatusScheduled,
	}

	if err := s.counselingRepo.Create(session); err != nil {
		log.Printf("[CounselingService] Ошибка создания сессии: %v", err)
		return nil, fmt.Errorf("%w: не удалось записаться на консультацию", apperrors.ErrUnavailable)
	}

	return session, nil
}

// GetUserSessions возвращает консультации пользователя
func (s *CounselingService) GetUserSessions(username string) ([]entity.CounselingSession, error) {
	sessions, err := s.counselingRepo.GetByUsername(username)
	if err != nil {
		log.Printf("[CounselingService] Ошибка получения сессий пользователя %s: %v", username, err)
		return nil, fmt.Errorf("%w: не удалось получить консультации", apperrors.ErrUnavailable)
	}
	return sessions, nil
}

// Reschedule переносит консультацию на другую дату.
// Завершенные консультации менять нельзя.
func (s *CounselingService) Reschedule(username string, sessionID uint, newDate time.Time) (*entity.CounselingSession, error) {
	session, err := s.ownedEditableSession(username, sessionID)
	if err != nil {
		return nil, err
	}

	session.PreferredDate = newDate
	session.Status = entity.SessionStatusRescheduled

	if err := s.counselingRepo.Update(session); err != nil {
		log.Printf("[CounselingService] Ошибка переноса сессии %d: %v", sessionID, err)
		return nil, fmt.Errorf("%w: не удалось перенести консультацию", apperrors.ErrUnavailable)
	}

	return session, nil
}

// UpdateTopic меняет тему консультации.
// Завершенные консультации менять нельзя.
func (s *CounselingService) UpdateTopic(username string, sessionID uint, topic string) (*entity.CounselingSession, error) {
	topic = strings.TrimSpace(sanitize.Text(topic))
	if topic == "" {
		return nil, fmt.Errorf("%w: тема консультации обязательна", apperrors.ErrValidation)
	}

	session, err := s.ownedEditableSession(username, sessionID)
	if err != nil {
		return nil, err
	}

	session.Topic = topic

	if err := s.counselingRepo.Update(session); err != nil {
		log.Printf("[CounselingService] Ошибка изменения темы сессии %d: %v", sessionID, err)
		return nil, fmt.Errorf("%w: не удалось изменить тему", apperrors.ErrUnavailable)
	}

	return session, nil
}

// Delete удаляет запись о консультации безвозвратно.
// В отличие от Cancel применимо к любой собственной записи,
// включая завершенные.
func (s *CounselingService) Delete(username string, sessionID uint) error {
	session, err := s.ownedSession(username, sessionID)
	if err != nil {
		return err
	}

	if err := s.counselingRepo.Delete(session.ID); err != nil {
		log.Printf("[CounselingService] Ошибка удаления сессии %d: %v", sessionID, err)
		return fmt.Errorf("%w: не удалось удалить запись", apperrors.ErrUnavailable)
	}

	return nil
}

// Cancel отменяет консультацию (статус cancelled, запись сохраняется)
func (s *CounselingService) Cancel(username string, sessionID uint) error {
	session, err := s.ownedEditableSession(username, sessionID)
	if err != nil {
		return err
	}

	if err := s.counselingRepo.UpdateStatus(session.ID, entity.SessionStatusCancelled); err != nil {
		log.Printf("[CounselingService] Ошибка отмены сессии %d: %v", sessionID, err)
		return fmt.Errorf("%w: не удалось отменить консультацию", apperrors.ErrUnavailable)
	}

	return nil
}

// ownedSession возвращает сессию, если она принадлежит пользователю
func (s *CounselingService) ownedSession(username string, sessionID uint) (*entity.CounselingSession, error) {
	session, err := s.counselingRepo.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		log.Printf("[CounselingService] Ошибка получения сессии %d: %v", sessionID, err)
		return nil, fmt.Errorf("%w: не удалось получить консультацию", apperrors.ErrUnavailable)
	}

	if session.Username != username {
		return nil, fmt.Errorf("%w: консультация принадлежит другому пользователю", apperrors.ErrForbidden)
	}

	return session, nil
}

// ownedEditableSession возвращает сессию, если она принадлежит пользователю
// и еще может быть изменена
func (s *CounselingService) ownedEditableSession(username string, sessionID uint) (*entity.CounselingSession, error) {
	session, err := s.ownedSession(username, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.IsEditable() {
		return nil, fmt.Errorf("%w: завершенную консультацию нельзя изменить", apperrors.ErrConflict)
	}

	return session, nil
}
