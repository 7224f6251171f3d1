package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/teen-support/internal/domain/entity"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// AnswerRepo реализует repository.AnswerRepository
type AnswerRepo struct {
	db *gorm.DB
}

// NewAnswerRepo создает новый репозиторий ответов
func NewAnswerRepo(db *gorm.DB) *AnswerRepo {
	return &AnswerRepo{db: db}
}

// Create создает новый ответ
func (r *AnswerRepo) Create(answer *entity.Answer) error {
	return r.db.Create(answer).Error
}

// GetByQuestionID возвращает ответы в порядке отображения:
// экспертные первыми, затем по голосам, при равенстве — старые первыми
func (r *AnswerRepo) GetByQuestionID(questionID uint) ([]entity.Answer, error) {
	var answers []entity.Answer
	err := r.db.Where("question_id = ?", questionID).
		Order("is_verified DESC").
		Order("helpful_votes DESC").
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// CountByQuestionID возвращает количество ответов на вопрос
func (r *AnswerRepo) CountByQuestionID(questionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Answer{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	return count, err
}

// IncrementHelpful увеличивает счетчик одного ответа на 1
func (r *AnswerRepo) IncrementHelpful(answerID uint) error {
	result := r.db.Model(&entity.Answer{}).
		Where("answer_id = ?", answerID).
		Update("helpful_votes", gorm.Expr("helpful_votes + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IncrementHelpfulForQuestion увеличивает счетчики всех ответов вопроса на 1
func (r *AnswerRepo) IncrementHelpfulForQuestion(questionID uint) error {
	return r.db.Model(&entity.Answer{}).
		Where("question_id = ?", questionID).
		Update("helpful_votes", gorm.Expr("helpful_votes + 1")).Error
}
