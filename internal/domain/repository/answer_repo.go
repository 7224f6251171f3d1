package repository

import (
	"github.com/yourusername/teen-support/internal/domain/entity"
)

// AnswerRepository определяет методы для работы с ответами
type AnswerRepository interface {
	Create(answer *entity.Answer) error

	// GetByQuestionID возвращает ответы на вопрос в порядке отображения:
	// сначала экспертные (is_verified DESC), затем по количеству голосов
	// (helpful_votes DESC), при равенстве — старые первыми (created_at ASC)
	GetByQuestionID(questionID uint) ([]entity.Answer, error)

	CountByQuestionID(questionID uint) (int64, error)

	// IncrementHelpful увеличивает счетчик одного конкретного ответа на 1.
	// Дедупликации голосов нет намеренно.
	IncrementHelpful(answerID uint) error

	// IncrementHelpfulForQuestion увеличивает счетчики всех ответов вопроса на 1
	// (грубая отметка "вся ветка полезна")
	IncrementHelpfulForQuestion(questionID uint) error
}
