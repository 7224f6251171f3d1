// Package validate содержит проверки пользовательского ввода.
package validate

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// Допустимые длины текстов
const (
	MinQuestionLength = 10
	MaxQuestionLength = 1000
	MinAnswerLength   = 5
	MaxAnswerLength   = 2000
	MinSearchLength   = 3
)

// QuestionText проверяет длину текста вопроса после очистки
func QuestionText(text string) error {
	return textLength(text, MinQuestionLength, MaxQuestionLength, "вопрос")
}

// AnswerText проверяет длину текста ответа после очистки
func AnswerText(text string) error {
	return textLength(text, MinAnswerLength, MaxAnswerLength, "ответ")
}

// SearchTerm проверяет минимальную длину поискового запроса
func SearchTerm(term string) error {
	if utf8.RuneCountInString(strings.TrimSpace(term)) < MinSearchLength {
		return fmt.Errorf("%w: поисковый запрос должен содержать не менее %d символов",
			apperrors.ErrValidation, MinSearchLength)
	}
	return nil
}

// Date разбирает дату в формате ГГГГ-ММ-ДД
func Date(raw string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: дата должна быть в формате YYYY-MM-DD", apperrors.ErrValidation)
	}
	return parsed, nil
}

// FutureDate разбирает дату и проверяет, что она не в прошлом
func FutureDate(raw string) (time.Time, error) {
	parsed, err := Date(raw)
	if err != nil {
		return time.Time{}, err
	}
	today := time.Now().Truncate(24 * time.Hour)
	if parsed.Before(today) {
		return time.Time{}, fmt.Errorf("%w: дата не может быть в прошлом", apperrors.ErrValidation)
	}
	return parsed, nil
}

// Score проверяет оценку за модуль (0-100)
func Score(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: оценка должна быть от 0 до 100", apperrors.ErrValidation)
	}
	return nil
}

func textLength(text string, min, max int, label string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(text))
	if length < min {
		return fmt.Errorf("%w: %s должен содержать не менее %d символов",
			apperrors.ErrValidation, label, min)
	}
	if length > max {
		return fmt.Errorf("%w: %s не должен превышать %d символов",
			apperrors.ErrValidation, label, max)
	}
	return nil
}
