package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// ============================================================================
// Моки репозиториев для сервисных тестов
// ============================================================================

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByUsername(username string) ([]repository.QuestionSummaryRow, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestionSummaryRow), args.Error(1)
}

func (m *MockQuestionRepository) BrowseAnswered(category entity.Category, limit int) ([]repository.QuestionSummaryRow, error) {
	args := m.Called(category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestionSummaryRow), args.Error(1)
}

func (m *MockQuestionRepository) SearchAnswered(term string, category entity.Category) ([]repository.QuestionSummaryRow, error) {
	args := m.Called(term, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestionSummaryRow), args.Error(1)
}

func (m *MockQuestionRepository) MarkAnswered(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionRepository) CountAnsweredByCategory(category entity.Category) (int64, error) {
	args := m.Called(category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) GetPending() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Stats() (*repository.QnAStatsRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.QnAStatsRow), args.Error(1)
}

// MockAnswerRepository реализует repository.AnswerRepository
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(answer *entity.Answer) error {
	args := m.Called(answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) GetByQuestionID(questionID uint) ([]entity.Answer, error) {
	args := m.Called(questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Answer), args.Error(1)
}

func (m *MockAnswerRepository) CountByQuestionID(questionID uint) (int64, error) {
	args := m.Called(questionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnswerRepository) IncrementHelpful(answerID uint) error {
	args := m.Called(answerID)
	return args.Error(0)
}

func (m *MockAnswerRepository) IncrementHelpfulForQuestion(questionID uint) error {
	args := m.Called(questionID)
	return args.Error(0)
}

// MockStatsRepository реализует repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) IncrementStat(name string, delta int64) error {
	args := m.Called(name, delta)
	return args.Error(0)
}

func (m *MockStatsRepository) GetStat(name string) (int64, error) {
	args := m.Called(name)
	return args.Get(0).(int64), args.Error(1)
}

func createTestQnAService(
	questionRepo *MockQuestionRepository,
	answerRepo *MockAnswerRepository,
	statsRepo *MockStatsRepository,
) *QnAService {
	return NewQnAService(questionRepo, answerRepo, statsRepo)
}

// ============================================================================
// SubmitQuestion
// ============================================================================

func TestQnAService_SubmitQuestion_Success(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	statsRepo := new(MockStatsRepository)
	svc := createTestQnAService(questionRepo, answerRepo, statsRepo)

	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(nil)
	statsRepo.On("IncrementStat", entity.StatTotalQuestionsAsked, int64(1)).Return(nil)

	// Act
	question, err := svc.SubmitQuestion("quiet_owl", "Как справиться со стрессом перед экзаменами?", "health")

	// Assert
	require.NoError(t, err, "Валидный вопрос должен приниматься")
	assert.Equal(t, entity.CategoryHealth, question.Category)
	assert.False(t, question.IsAnswered, "Новый вопрос не должен быть отвеченным")
	questionRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
}

func TestQnAService_SubmitQuestion_UnknownCategoryBecomesGeneral(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	statsRepo := new(MockStatsRepository)
	svc := createTestQnAService(questionRepo, new(MockAnswerRepository), statsRepo)

	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(nil)
	statsRepo.On("IncrementStat", entity.StatTotalQuestionsAsked, int64(1)).Return(nil)

	// Act
	question, err := svc.SubmitQuestion("quiet_owl", "Вопрос с неизвестной категорией, достаточно длинный", "nonsense")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryGeneral, question.Category, "Неизвестная категория должна заменяться на general")
}

func TestQnAService_SubmitQuestion_TooShortAfterSanitize(t *testing.T) {
	// Arrange
	svc := createTestQnAService(new(MockQuestionRepository), new(MockAnswerRepository), new(MockStatsRepository))

	// Текст длинный только за счет вредоносного тега: после очистки остается мало
	text := "Hi <script>alert('this is a very long malicious payload')</script>"

	// Act
	_, err := svc.SubmitQuestion("quiet_owl", text, "general")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Длина должна проверяться после очистки текста")
}

// ============================================================================
// SubmitAnswer
// ============================================================================

func TestQnAService_SubmitAnswer_MarksQuestionAnswered(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	svc := createTestQnAService(questionRepo, answerRepo, new(MockStatsRepository))

	questionRepo.On("GetByID", uint(7)).Return(&entity.Question{
		ID: 7, Username: "asker", IsAnswered: false,
	}, nil)
	answerRepo.On("Create", mock.AnythingOfType("*entity.Answer")).Return(nil)
	questionRepo.On("MarkAnswered", uint(7)).Return(nil)

	// Act
	answer, err := svc.SubmitAnswer("helper", 7, "Попробуй дыхательные упражнения и режим сна")

	// Assert
	require.NoError(t, err)
	assert.False(t, answer.IsVerified, "Ответ сообщества не должен быть верифицированным")
	questionRepo.AssertCalled(t, "MarkAnswered", uint(7))
}

func TestQnAService_SubmitAnswer_OwnQuestionForbidden(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	svc := createTestQnAService(questionRepo, new(MockAnswerRepository), new(MockStatsRepository))

	questionRepo.On("GetByID", uint(7)).Return(&entity.Question{
		ID: 7, Username: "asker",
	}, nil)

	// Act
	_, err := svc.SubmitAnswer("asker", 7, "Отвечаю сам себе, вполне развернуто")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrForbidden, "Отвечать на собственный вопрос нельзя")
}

func TestQnAService_SubmitAnswer_QuestionNotFound(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	svc := createTestQnAService(questionRepo, new(MockAnswerRepository), new(MockStatsRepository))

	questionRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	// Act
	_, err := svc.SubmitAnswer("helper", 99, "Ответ на несуществующий вопрос")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// ============================================================================
// GetQuestionWithAnswers
// ============================================================================

func TestQnAService_GetQuestionWithAnswers_OrderPreserved(t *testing.T) {
	// Arrange: репозиторий возвращает ответы уже в порядке отображения —
	// экспертные первыми, затем по голосам, при равенстве старые первыми
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	svc := createTestQnAService(questionRepo, answerRepo, new(MockStatsRepository))

	now := time.Now()
	questionRepo.On("GetByID", uint(1)).Return(&entity.Question{
		ID: 1, Username: "asker", IsAnswered: true,
	}, nil)
	answerRepo.On("GetByQuestionID", uint(1)).Return([]entity.Answer{
		{ID: 10, IsVerified: true, HelpfulVotes: 2, CreatedAt: now},
		{ID: 11, IsVerified: false, HelpfulVotes: 5, CreatedAt: now},
		{ID: 12, IsVerified: false, HelpfulVotes: 5, CreatedAt: now.Add(time.Hour)},
		{ID: 13, IsVerified: false, HelpfulVotes: 2, CreatedAt: now},
	}, nil)

	// Act
	detail, err := svc.GetQuestionWithAnswers(1)

	// Assert
	require.NoError(t, err)
	require.Len(t, detail.Answers, 4)
	assert.Equal(t, uint(10), detail.Answers[0].ID, "Экспертный ответ должен быть первым")
	assert.Equal(t, entity.AnsweredByExpert, detail.Answers[0].AnsweredBy)
	assert.Equal(t, uint(11), detail.Answers[1].ID)
	assert.Equal(t, entity.AnsweredByCommunity, detail.Answers[1].AnsweredBy)
	assert.Equal(t, int64(4), detail.Question.AnswerCount)
}

func TestQnAService_GetQuestionWithAnswers_PendingHidesAnswers(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	svc := createTestQnAService(questionRepo, answerRepo, new(MockStatsRepository))

	questionRepo.On("GetByID", uint(2)).Return(&entity.Question{
		ID: 2, Username: "asker", IsAnswered: false,
	}, nil)

	// Act
	detail, err := svc.GetQuestionWithAnswers(2)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, detail.Answers, "У неотвеченного вопроса ответы не показываются")
	assert.Equal(t, entity.QuestionStatusPending, detail.Question.Status)
	answerRepo.AssertNotCalled(t, "GetByQuestionID", mock.Anything)
}

// ============================================================================
// Голосование
// ============================================================================

func TestQnAService_MarkThreadHelpful_SelfVoteForbidden(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	svc := createTestQnAService(questionRepo, answerRepo, new(MockStatsRepository))

	questionRepo.On("GetByID", uint(3)).Return(&entity.Question{
		ID: 3, Username: "asker",
	}, nil)

	// Act
	err := svc.MarkThreadHelpful("asker", 3)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrForbidden, "Голосовать за ответы на собственный вопрос нельзя")
	answerRepo.AssertNotCalled(t, "IncrementHelpfulForQuestion", mock.Anything)
}

func TestQnAService_MarkThreadHelpful_NoAnswers(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	svc := createTestQnAService(questionRepo, answerRepo, new(MockStatsRepository))

	questionRepo.On("GetByID", uint(3)).Return(&entity.Question{
		ID: 3, Username: "asker",
	}, nil)
	answerRepo.On("CountByQuestionID", uint(3)).Return(int64(0), nil)

	// Act
	err := svc.MarkThreadHelpful("voter", 3)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "Голос по вопросу без ответов должен отклоняться")
}

func TestQnAService_MarkThreadHelpful_NoDeduplication(t *testing.T) {
	// Arrange: дедупликации голосов нет — повторный вызов снова инкрементирует
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	svc := createTestQnAService(questionRepo, answerRepo, new(MockStatsRepository))

	questionRepo.On("GetByID", uint(3)).Return(&entity.Question{
		ID: 3, Username: "asker",
	}, nil)
	answerRepo.On("CountByQuestionID", uint(3)).Return(int64(2), nil)
	answerRepo.On("IncrementHelpfulForQuestion", uint(3)).Return(nil)

	// Act
	err1 := svc.MarkThreadHelpful("voter", 3)
	err2 := svc.MarkThreadHelpful("voter", 3)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	answerRepo.AssertNumberOfCalls(t, "IncrementHelpfulForQuestion", 2)
}

func TestQnAService_MarkAnswerHelpful_SelfVoteForbidden(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	svc := createTestQnAService(questionRepo, answerRepo, new(MockStatsRepository))

	questionRepo.On("GetByID", uint(3)).Return(&entity.Question{
		ID: 3, Username: "asker",
	}, nil)

	// Act
	err := svc.MarkAnswerHelpful("asker", 3, 30)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	answerRepo.AssertNotCalled(t, "IncrementHelpful", mock.Anything)
}

func TestQnAService_MarkAnswerHelpful_Success(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	svc := createTestQnAService(questionRepo, answerRepo, new(MockStatsRepository))

	questionRepo.On("GetByID", uint(3)).Return(&entity.Question{
		ID: 3, Username: "asker",
	}, nil)
	answerRepo.On("IncrementHelpful", uint(30)).Return(nil)

	// Act
	err := svc.MarkAnswerHelpful("voter", 3, 30)

	// Assert
	require.NoError(t, err)
	answerRepo.AssertCalled(t, "IncrementHelpful", uint(30))
}

// ============================================================================
// Категории и статистика
// ============================================================================

func TestQnAService_GetCategories_AlwaysFive(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	svc := createTestQnAService(questionRepo, new(MockAnswerRepository), new(MockStatsRepository))

	questionRepo.On("CountAnsweredByCategory", mock.AnythingOfType("entity.Category")).Return(int64(0), nil)

	// Act
	categories, err := svc.GetCategories()

	// Assert
	require.NoError(t, err)
	assert.Len(t, categories, 5, "Список категорий фиксированный: всегда 5 элементов")
	assert.Equal(t, entity.CategoryGeneral, categories[0].Name)
	assert.Equal(t, entity.CategoryOther, categories[4].Name)
}

func TestQnAService_SearchQuestions_TermTooShort(t *testing.T) {
	// Arrange
	svc := createTestQnAService(new(MockQuestionRepository), new(MockAnswerRepository), new(MockStatsRepository))

	// Act
	_, err := svc.SearchQuestions("ab", "")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Запрос короче 3 символов должен отклоняться")
}

func TestQnAService_GetStats(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	statsRepo := new(MockStatsRepository)
	svc := createTestQnAService(questionRepo, new(MockAnswerRepository), statsRepo)

	questionRepo.On("Stats").Return(&repository.QnAStatsRow{
		TotalQuestions:    10,
		AnsweredQuestions: 4,
		PendingQuestions:  6,
		TotalAnswers:      9,
		ActiveUsers:       3,
	}, nil)
	statsRepo.On("GetStat", entity.StatTotalQuestionsAsked).Return(int64(12), nil)

	// Act
	stats, err := svc.GetStats()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalQuestions)
	assert.InDelta(t, 40.0, stats.AnsweredPercent, 0.01, "Процент отвеченных должен считаться от общего числа")
	assert.Equal(t, int64(12), stats.TotalQuestionsAsked, "Счетчик всех заданных вопросов берется из system_stats")
}

func TestQnAService_GetStats_StorageUnavailable(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepository)
	svc := createTestQnAService(questionRepo, new(MockAnswerRepository), new(MockStatsRepository))

	questionRepo.On("Stats").Return(nil, assert.AnError)

	// Act
	_, err := svc.GetStats()

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrUnavailable, "Ошибка хранилища должна отличаться от not-found")
}
