// Package session сохраняет последнее имя пользователя между запусками.
// Это не аутентификация: файл лишь избавляет от повторного ввода имени.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// Session представляет сохраненную сессию
type Session struct {
	SessionID string `json:"session_id"`
	Username  string `json:"username"`
}

// Store читает и пишет файл сессии
type Store struct {
	path string
}

// NewStore создает хранилище сессии по указанному пути
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save записывает сессию с новым идентификатором
func (s *Store) Save(username string) (*Session, error) {
	sess := &Session{
		SessionID: uuid.New().String(),
		Username:  username,
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return nil, fmt.Errorf("failed to write session file: %w", err)
	}

	return sess, nil
}

// Restore читает сохраненную сессию.
// Возвращает ErrNotFound, если файла нет или он поврежден.
func (s *Store) Restore() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Поврежденный файл считаем отсутствующей сессией
		return nil, apperrors.ErrNotFound
	}
	if sess.Username == "" {
		return nil, apperrors.ErrNotFound
	}

	return &sess, nil
}

// Clear удаляет файл сессии
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
