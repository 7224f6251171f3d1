package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

func TestStore_SaveAndRestore(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	// Act
	saved, err := store.Save("quiet_owl")
	require.NoError(t, err, "Сохранение сессии не должно возвращать ошибку")

	restored, err := store.Restore()

	// Assert
	require.NoError(t, err, "Восстановление сессии не должно возвращать ошибку")
	assert.Equal(t, "quiet_owl", restored.Username, "Имя пользователя должно совпадать")
	assert.Equal(t, saved.SessionID, restored.SessionID, "Идентификатор сессии должен совпадать")
	assert.NotEmpty(t, restored.SessionID, "Идентификатор сессии должен быть заполнен")
}

func TestStore_RestoreMissingFile(t *testing.T) {
	// Arrange
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))

	// Act
	_, err := store.Restore()

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "Отсутствие файла должно давать ErrNotFound")
}

func TestStore_RestoreCorruptedFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	store := NewStore(path)

	// Act
	_, err := store.Restore()

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "Поврежденный файл должен считаться отсутствующей сессией")
}

func TestStore_Clear(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	_, err := store.Save("quiet_owl")
	require.NoError(t, err)

	// Act
	err = store.Clear()

	// Assert
	require.NoError(t, err, "Удаление сессии не должно возвращать ошибку")
	_, err = store.Restore()
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "После очистки сессии быть не должно")

	// Повторная очистка не должна падать
	assert.NoError(t, store.Clear(), "Повторная очистка должна быть идемпотентной")
}
