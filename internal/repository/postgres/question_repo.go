package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetByUsername возвращает вопросы пользователя с количеством ответов, новые первыми
func (r *QuestionRepo) GetByUsername(username string) ([]repository.QuestionSummaryRow, error) {
	var rows []repository.QuestionSummaryRow
	err := r.db.Raw(`
		SELECT q.question_id, q.username, q.question_text, q.category, q.is_answered, q.created_at,
		       COUNT(a.answer_id) AS answer_count,
		       MAX(a.created_at) AS last_answered
		FROM anonymous_questions q
		LEFT JOIN anonymous_answers a ON q.question_id = a.question_id
		WHERE q.username = ?
		GROUP BY q.question_id, q.username, q.question_text, q.category, q.is_answered, q.created_at
		ORDER BY q.created_at DESC
	`, username).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// BrowseAnswered возвращает отвеченные вопросы, популярные первыми.
// Пустая категория означает "все категории".
func (r *QuestionRepo) BrowseAnswered(category entity.Category, limit int) ([]repository.QuestionSummaryRow, error) {
	var rows []repository.QuestionSummaryRow

	query := `
		SELECT q.question_id, q.username, q.question_text, q.category, q.is_answered, q.created_at,
		       COUNT(a.answer_id) AS answer_count,
		       MAX(a.created_at) AS last_answered
		FROM anonymous_questions q
		LEFT JOIN anonymous_answers a ON q.question_id = a.question_id
		WHERE q.is_answered = TRUE`
	args := []interface{}{}

	if category != "" {
		query += " AND q.category = ?"
		args = append(args, category)
	}

	query += `
		GROUP BY q.question_id, q.username, q.question_text, q.category, q.is_answered, q.created_at
		ORDER BY answer_count DESC, q.created_at DESC
		LIMIT ?`
	args = append(args, limit)

	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchAnswered ищет отвеченные вопросы по подстроке в тексте вопроса или ответа
func (r *QuestionRepo) SearchAnswered(term string, category entity.Category) ([]repository.QuestionSummaryRow, error) {
	var rows []repository.QuestionSummaryRow
	pattern := "%" + term + "%"

	query := `
		SELECT q.question_id, q.username, q.question_text, q.category, q.is_answered, q.created_at,
		       COUNT(a.answer_id) AS answer_count,
		       MAX(a.created_at) AS last_answered
		FROM anonymous_questions q
		LEFT JOIN anonymous_answers a ON q.question_id = a.question_id
		WHERE q.is_answered = TRUE
		  AND (q.question_text ILIKE ? OR a.answer_text ILIKE ?)`
	args := []interface{}{pattern, pattern}

	if category != "" {
		query += " AND q.category = ?"
		args = append(args, category)
	}

	query += `
		GROUP BY q.question_id, q.username, q.question_text, q.category, q.is_answered, q.created_at
		ORDER BY answer_count DESC, q.created_at DESC`

	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkAnswered выставляет флаг is_answered
func (r *QuestionRepo) MarkAnswered(id uint) error {
	result := r.db.Model(&entity.Question{}).
		Where("question_id = ?", id).
		Update("is_answered", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountAnsweredByCategory возвращает количество отвеченных вопросов в категории
func (r *QuestionRepo) CountAnsweredByCategory(category entity.Category) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).
		Where("category = ? AND is_answered = TRUE", category).
		Count(&count).Error
	return count, err
}

// GetPending возвращает неотвеченные вопросы, старые первыми
func (r *QuestionRepo) GetPending() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("is_answered = FALSE").
		Order("created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Stats считает агрегаты одним живым запросом
func (r *QuestionRepo) Stats() (*repository.QnAStatsRow, error) {
	var row repository.QnAStatsRow
	err := r.db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM anonymous_questions) AS total_questions,
			(SELECT COUNT(*) FROM anonymous_questions WHERE is_answered = TRUE) AS answered_questions,
			(SELECT COUNT(*) FROM anonymous_questions WHERE is_answered = FALSE) AS pending_questions,
			(SELECT COUNT(*) FROM anonymous_answers) AS total_answers,
			(SELECT COUNT(DISTINCT username) FROM anonymous_questions) AS active_users
	`).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
