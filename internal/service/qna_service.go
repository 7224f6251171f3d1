package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
	"github.com/yourusername/teen-support/internal/pkg/sanitize"
	"github.com/yourusername/teen-support/internal/pkg/validate"
)

// Лимиты выборок по умолчанию
const (
	DefaultBrowseLimit = 20
)

// QuestionSummary — вопрос в списке: с количеством ответов, без текстов ответов
type QuestionSummary struct {
	ID           uint
	Username     string
	Text         string
	Category     entity.Category
	Status       string
	CreatedAt    time.Time
	AnswerCount  int64
	LastAnswered *time.Time
}

// AnswerView — ответ для отображения
type AnswerView struct {
	ID           uint
	Text         string
	AnsweredBy   string
	IsVerified   bool
	HelpfulVotes int
	CreatedAt    time.Time
}

// QuestionDetail — вопрос вместе с упорядоченными ответами
type QuestionDetail struct {
	Question QuestionSummary
	Answers  []AnswerView
}

// CategoryView — категория с живым количеством отвеченных вопросов
type CategoryView struct {
	Name          entity.Category
	Description   string
	ColorCode     string
	QuestionCount int64
}

// QnAStats — агрегированная статистика Q&A-подсистемы
type QnAStats struct {
	TotalQuestions      int64
	AnsweredQuestions   int64
	PendingQuestions    int64
	TotalAnswers        int64
	ActiveUsers         int64
	AnsweredPercent     float64
	TotalQuestionsAsked int64
}

// QnAService предоставляет операции анонимных вопросов и ответов
type QnAService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	statsRepo    repository.StatsRepository
}

// NewQnAService создает новый сервис вопросов и ответов
func NewQnAService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	statsRepo repository.StatsRepository,
) *QnAService {
	return &QnAService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		statsRepo:    statsRepo,
	}
}

// SubmitQuestion принимает новый анонимный вопрос.
// Текст очищается, длина проверяется после очистки,
// неизвестная категория заменяется на general.
func (s *QnAService) SubmitQuestion(username, text, category string) (*entity.Question, error) {
	cleaned := sanitize.Text(text)
	if err := validate.QuestionText(cleaned); err != nil {
		return nil, err
	}

	question := &entity.Question{
		Username: username,
		Text:     cleaned,
		Category: entity.NormalizeCategory(category),
	}

	if err := s.questionRepo.Create(question); err != nil {
		log.Printf("[QnAService] Ошибка создания вопроса: %v", err)
		return nil, fmt.Errorf("%w: не удалось сохранить вопрос", apperrors.ErrUnavailable)
	}

	// Счетчик всех когда-либо заданных вопросов не уменьшается при удалениях
	if err := s.statsRepo.IncrementStat(entity.StatTotalQuestionsAsked, 1); err != nil {
		// Вопрос уже сохранен, счетчик не критичен
		log.Printf("[QnAService] Ошибка обновления счетчика вопросов: %v", err)
	}

	return question, nil
}

// SubmitAnswer принимает ответ сообщества на вопрос.
// Ответ всегда создается с is_verified = false; при первом ответе
// вопрос помечается отвеченным.
func (s *QnAService) SubmitAnswer(username string, questionID uint, text string) (*entity.Answer, error) {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		log.Printf("[QnAService] Ошибка получения вопроса %d: %v", questionID, err)
		return nil, fmt.Errorf("%w: не удалось получить вопрос", apperrors.ErrUnavailable)
	}

	// Отвечать на собственный вопрос нельзя
	if question.IsAskedBy(username) {
		return nil, fmt.Errorf("%w: нельзя отвечать на собственный вопрос", apperrors.ErrForbidden)
	}

	cleaned := sanitize.Text(text)
	if err := validate.AnswerText(cleaned); err != nil {
		return nil, err
	}

	answer := &entity.Answer{
		QuestionID: questionID,
		Text:       cleaned,
		IsVerified: false,
	}

	if err := s.answerRepo.Create(answer); err != nil {
		log.Printf("[QnAService] Ошибка создания ответа на вопрос %d: %v", questionID, err)
		return nil, fmt.Errorf("%w: не удалось сохранить ответ", apperrors.ErrUnavailable)
	}

	if !question.IsAnswered {
		if err := s.questionRepo.MarkAnswered(questionID); err != nil {
			log.Printf("[QnAService] Ошибка пометки вопроса %d отвеченным: %v", questionID, err)
		}
	}

	return answer, nil
}

// GetUserQuestions возвращает вопросы пользователя с количеством ответов
func (s *QnAService) GetUserQuestions(username string) ([]QuestionSummary, error) {
	rows, err := s.questionRepo.GetByUsername(username)
	if err != nil {
		log.Printf("[QnAService] Ошибка получения вопросов пользователя %s: %v", username, err)
		return nil, fmt.Errorf("%w: не удалось получить вопросы", apperrors.ErrUnavailable)
	}
	return summariesFromRows(rows), nil
}

// BrowseQuestions возвращает отвеченные вопросы, опционально по категории.
// Пустая категория означает "все категории".
func (s *QnAService) BrowseQuestions(category string, limit int) ([]QuestionSummary, error) {
	if limit <= 0 {
		limit = DefaultBrowseLimit
	}

	var cat entity.Category
	if category != "" {
		cat = entity.NormalizeCategory(category)
	}

	rows, err := s.questionRepo.BrowseAnswered(cat, limit)
	if err != nil {
		log.Printf("[QnAService] Ошибка просмотра вопросов: %v", err)
		return nil, fmt.Errorf("%w: не удалось получить вопросы", apperrors.ErrUnavailable)
	}
	return summariesFromRows(rows), nil
}

// SearchQuestions ищет отвеченные вопросы по подстроке в тексте вопроса
// или любого из ответов, без учета регистра
func (s *QnAService) SearchQuestions(term, category string) ([]QuestionSummary, error) {
	if err := validate.SearchTerm(term); err != nil {
		return nil, err
	}

	var cat entity.Category
	if category != "" {
		cat = entity.NormalizeCategory(category)
	}

	rows, err := s.questionRepo.SearchAnswered(term, cat)
	if err != nil {
		log.Printf("[QnAService] Ошибка поиска вопросов: %v", err)
		return nil, fmt.Errorf("%w: не удалось выполнить поиск", apperrors.ErrUnavailable)
	}
	return summariesFromRows(rows), nil
}

// GetQuestionWithAnswers возвращает вопрос с ответами в порядке отображения:
// экспертные первыми, затем по голосам, при равенстве — старые первыми.
// Для неотвеченного вопроса список ответов пуст.
func (s *QnAService) GetQuestionWithAnswers(questionID uint) (*QuestionDetail, error) {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		log.Printf("[QnAService] Ошибка получения вопроса %d: %v", questionID, err)
		return nil, fmt.Errorf("%w: не удалось получить вопрос", apperrors.ErrUnavailable)
	}

	detail := &QuestionDetail{
		Question: QuestionSummary{
			ID:        question.ID,
			Username:  question.Username,
			Text:      question.Text,
			Category:  question.Category,
			Status:    question.Status(),
			CreatedAt: question.CreatedAt,
		},
	}

	// Ответы на неотвеченный вопрос не показываются
	if !question.IsAnswered {
		return detail, nil
	}

	answers, err := s.answerRepo.GetByQuestionID(questionID)
	if err != nil {
		log.Printf("[QnAService] Ошибка получения ответов вопроса %d: %v", questionID, err)
		return nil, fmt.Errorf("%w: не удалось получить ответы", apperrors.ErrUnavailable)
	}

	detail.Question.AnswerCount = int64(len(answers))
	for i := range answers {
		a := &answers[i]
		detail.Answers = append(detail.Answers, AnswerView{
			ID:           a.ID,
			Text:         a.Text,
			AnsweredBy:   a.AnsweredBy(),
			IsVerified:   a.IsVerified,
			HelpfulVotes: a.HelpfulVotes,
			CreatedAt:    a.CreatedAt,
		})
	}

	return detail, nil
}

// GetCategories возвращает фиксированный список категорий с живым
// количеством отвеченных вопросов в каждой
func (s *QnAService) GetCategories() ([]CategoryView, error) {
	infos := entity.AllCategories()
	views := make([]CategoryView, 0, len(infos))

	for _, info := range infos {
		count, err := s.questionRepo.CountAnsweredByCategory(info.Name)
		if err != nil {
			log.Printf("[QnAService] Ошибка подсчета вопросов категории %s: %v", info.Name, err)
			return nil, fmt.Errorf("%w: не удалось получить категории", apperrors.ErrUnavailable)
		}
		views = append(views, CategoryView{
			Name:          info.Name,
			Description:   info.Description,
			ColorCode:     info.ColorCode,
			QuestionCount: count,
		})
	}

	return views, nil
}

// MarkThreadHelpful увеличивает счетчики всех ответов на вопрос на 1.
// Голосовать за ответы на собственный вопрос нельзя.
// Дедупликации голосов нет: повторный вызов снова увеличивает счетчики.
func (s *QnAService) MarkThreadHelpful(username string, questionID uint) error {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		log.Printf("[QnAService] Ошибка получения вопроса %d: %v", questionID, err)
		return fmt.Errorf("%w: не удалось получить вопрос", apperrors.ErrUnavailable)
	}

	if question.IsAskedBy(username) {
		return fmt.Errorf("%w: нельзя голосовать за ответы на собственный вопрос", apperrors.ErrForbidden)
	}

	count, err := s.answerRepo.CountByQuestionID(questionID)
	if err != nil {
		log.Printf("[QnAService] Ошибка подсчета ответов вопроса %d: %v", questionID, err)
		return fmt.Errorf("%w: не удалось получить ответы", apperrors.ErrUnavailable)
	}
	if count == 0 {
		return fmt.Errorf("%w: у вопроса нет ответов", apperrors.ErrNotFound)
	}

	if err := s.answerRepo.IncrementHelpfulForQuestion(questionID); err != nil {
		log.Printf("[QnAService] Ошибка голосования за ветку %d: %v", questionID, err)
		return fmt.Errorf("%w: не удалось сохранить голос", apperrors.ErrUnavailable)
	}

	return nil
}

// MarkAnswerHelpful увеличивает счетчик одного конкретного ответа на 1.
// Запрет самоголосования действует и здесь.
func (s *QnAService) MarkAnswerHelpful(username string, questionID, answerID uint) error {
	question, err := s.questionRepo.GetByID(questionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		log.Printf("[QnAService] Ошибка получения вопроса %d: %v", questionID, err)
		return fmt.Errorf("%w: не удалось получить вопрос", apperrors.ErrUnavailable)
	}

	if question.IsAskedBy(username) {
		return fmt.Errorf("%w: нельзя голосовать за ответы на собственный вопрос", apperrors.ErrForbidden)
	}

	if err := s.answerRepo.IncrementHelpful(answerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		log.Printf("[QnAService] Ошибка голосования за ответ %d: %v", answerID, err)
		return fmt.Errorf("%w: не удалось сохранить голос", apperrors.ErrUnavailable)
	}

	return nil
}

// GetStats собирает статистику живыми запросами, без кеширования
func (s *QnAService) GetStats() (*QnAStats, error) {
	row, err := s.questionRepo.Stats()
	if err != nil {
		log.Printf("[QnAService] Ошибка получения статистики: %v", err)
		return nil, fmt.Errorf("%w: не удалось получить статистику", apperrors.ErrUnavailable)
	}

	totalAsked, err := s.statsRepo.GetStat(entity.StatTotalQuestionsAsked)
	if err != nil {
		log.Printf("[QnAService] Ошибка получения счетчика вопросов: %v", err)
		return nil, fmt.Errorf("%w: не удалось получить статистику", apperrors.ErrUnavailable)
	}

	stats := &QnAStats{
		TotalQuestions:      row.TotalQuestions,
		AnsweredQuestions:   row.AnsweredQuestions,
		PendingQuestions:    row.PendingQuestions,
		TotalAnswers:        row.TotalAnswers,
		ActiveUsers:         row.ActiveUsers,
		TotalQuestionsAsked: totalAsked,
	}
	if row.TotalQuestions > 0 {
		stats.AnsweredPercent = float64(row.AnsweredQuestions) / float64(row.TotalQuestions) * 100
	}

	return stats, nil
}

func summariesFromRows(rows []repository.QuestionSummaryRow) []QuestionSummary {
	summaries := make([]QuestionSummary, 0, len(rows))
	for _, row := range rows {
		status := entity.QuestionStatusPending
		if row.IsAnswered {
			status = entity.QuestionStatusAnswered
		}
		summaries = append(summaries, QuestionSummary{
			ID:           row.ID,
			Username:     row.Username,
			Text:         row.Text,
			Category:     row.Category,
			Status:       status,
			CreatedAt:    row.CreatedAt,
			AnswerCount:  row.AnswerCount,
			LastAnswered: row.LastAnswered,
		})
	}
	return summaries
}
