package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

func TestQuestionText(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"Валидный вопрос", "Как справиться со стрессом перед экзаменами?", false},
		{"Слишком короткий", "Почему?", true},
		{"Минимальная длина", strings.Repeat("а", MinQuestionLength), false},
		{"Максимальная длина", strings.Repeat("а", MaxQuestionLength), false},
		{"Превышение максимума", strings.Repeat("а", MaxQuestionLength+1), true},
		{"Только пробелы", "               ", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := QuestionText(tc.text)
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation, "Ожидалась ошибка валидации")
			} else {
				assert.NoError(t, err, "Ошибки быть не должно")
			}
		})
	}
}

func TestAnswerText(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"Валидный ответ", "Попробуй дыхательные упражнения", false},
		{"Слишком короткий", "Да", true},
		{"Минимальная длина", strings.Repeat("б", MinAnswerLength), false},
		{"Превышение максимума", strings.Repeat("б", MaxAnswerLength+1), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := AnswerText(tc.text)
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation, "Ожидалась ошибка валидации")
			} else {
				assert.NoError(t, err, "Ошибки быть не должно")
			}
		})
	}
}

func TestSearchTerm(t *testing.T) {
	// Act & Assert
	assert.NoError(t, SearchTerm("стресс"), "Запрос достаточной длины должен проходить")
	assert.ErrorIs(t, SearchTerm("ab"), apperrors.ErrValidation, "Короткий запрос должен отклоняться")
	assert.ErrorIs(t, SearchTerm("  a  "), apperrors.ErrValidation, "Пробелы не должны учитываться в длине")
}

func TestDate(t *testing.T) {
	// Act
	parsed, err := Date("2026-09-15")

	// Assert
	assert.NoError(t, err, "Корректная дата должна разбираться")
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.September, parsed.Month())

	_, err = Date("15.09.2026")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Неверный формат должен отклоняться")
}

func TestFutureDate(t *testing.T) {
	// Arrange
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	// Act & Assert
	_, err := FutureDate(tomorrow)
	assert.NoError(t, err, "Завтрашняя дата должна приниматься")

	_, err = FutureDate(yesterday)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Вчерашняя дата должна отклоняться")
}

func TestScore(t *testing.T) {
	assert.NoError(t, Score(0))
	assert.NoError(t, Score(100))
	assert.ErrorIs(t, Score(-1), apperrors.ErrValidation)
	assert.ErrorIs(t, Score(101), apperrors.ErrValidation)
}
