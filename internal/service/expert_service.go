package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
	"github.com/yourusername/teen-support/internal/pkg/sanitize"
	"github.com/yourusername/teen-support/internal/pkg/validate"
)

// ExpertService предоставляет операции эксперта (админ-инструмент):
// просмотр неотвеченных вопросов и верифицированные ответы.
type ExpertService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

// NewExpertService создает новый сервис эксперта
func NewExpertService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
) *ExpertService {
	return &ExpertService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

// PendingQuestions возвращает неотвеченные вопросы, старые первыми
func (s *ExpertService) PendingQuestions() ([]entity.Question, error) {
	questions, err := s.questionRepo.GetPending()
	if err != nil {
		log.Printf("[ExpertService] Ошибка получения неотвеченных вопросов: %v", err)
		return nil, fmt.Errorf("%w: не удалось получить вопросы", apperrors.ErrUnavailable)
	}
	return questions, nil
}

// AnswerAsExpert создает верифицированный ответ эксперта.
// Единственный путь, которым в системе появляется is_verified = true.
func (s *ExpertService) AnswerAsExpert(questionID uint, text string) (*entity.Answer, error) {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		log.Printf("[ExpertService] Ошибка получения вопроса %d: %v", questionID, err)
		return nil, fmt.Errorf("%w: не удалось получить вопрос", apperrors.ErrUnavailable)
	}

	cleaned := sanitize.Text(text)
	if err := validate.AnswerText(cleaned); err != nil {
		return nil, err
	}

	answer := &entity.Answer{
		QuestionID: questionID,
		Text:       cleaned,
		IsVerified: true,
	}

	if err := s.answerRepo.Create(answer); err != nil {
		log.Printf("[ExpertService] Ошибка создания экспертного ответа на вопрос %d: %v", questionID, err)
		return nil, fmt.Errorf("%w: не удалось сохранить ответ", apperrors.ErrUnavailable)
	}

	if !question.IsAnswered {
		if err := s.questionRepo.MarkAnswered(questionID); err != nil {
			log.Printf("[ExpertService] Ошибка пометки вопроса %d отвеченным: %v", questionID, err)
		}
	}

	return answer, nil
}
