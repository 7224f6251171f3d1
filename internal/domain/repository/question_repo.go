package repository

import (
	"time"

	"github.com/yourusername/teen-support/internal/domain/entity"
)

// QuestionSummaryRow — строка агрегирующего запроса по вопросам:
// вопрос вместе с количеством ответов и временем последнего ответа.
type QuestionSummaryRow struct {
	ID           uint            `gorm:"column:question_id"`
	Username     string          `gorm:"column:username"`
	Text         string          `gorm:"column:question_text"`
	Category     entity.Category `gorm:"column:category"`
	IsAnswered   bool            `gorm:"column:is_answered"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	AnswerCount  int64           `gorm:"column:answer_count"`
	LastAnswered *time.Time      `gorm:"column:last_answered"`
}

// QnAStatsRow — живая агрегированная статистика Q&A-подсистемы
type QnAStatsRow struct {
	TotalQuestions    int64 `gorm:"column:total_questions"`
	AnsweredQuestions int64 `gorm:"column:answered_questions"`
	PendingQuestions  int64 `gorm:"column:pending_questions"`
	TotalAnswers      int64 `gorm:"column:total_answers"`
	ActiveUsers       int64 `gorm:"column:active_users"`
}

// QuestionRepository определяет методы для работы с анонимными вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)

	// GetByUsername возвращает вопросы пользователя с количеством ответов,
	// новые первыми
	GetByUsername(username string) ([]QuestionSummaryRow, error)

	// BrowseAnswered возвращает отвеченные вопросы, отсортированные по
	// количеству ответов (по убыванию), затем по дате создания (по убыванию).
	// Пустая категория означает "все категории".
	BrowseAnswered(category entity.Category, limit int) ([]QuestionSummaryRow, error)

	// SearchAnswered ищет отвеченные вопросы по подстроке (без учета регистра)
	// в тексте вопроса или любого из его ответов. Сортировка как у BrowseAnswered.
	SearchAnswered(term string, category entity.Category) ([]QuestionSummaryRow, error)

	MarkAnswered(id uint) error
	CountAnsweredByCategory(category entity.Category) (int64, error)

	// GetPending возвращает неотвеченные вопросы, старые первыми (для экспертов)
	GetPending() ([]entity.Question, error)

	// Stats считает агрегаты живым запросом, без кеширования
	Stats() (*QnAStatsRow, error)
}
