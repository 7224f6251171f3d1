package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
)

func TestSeedService_LoadSampleData_SkipsWhenQuestionsExist(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	statsRepo := new(MockStatsRepository)
	svc := NewSeedService(userRepo, questionRepo, answerRepo, statsRepo)

	questionRepo.On("Stats").Return(&repository.QnAStatsRow{TotalQuestions: 12}, nil)

	// Act
	err := svc.LoadSampleData()

	// Assert
	require.NoError(t, err)
	questionRepo.AssertNotCalled(t, "Create", mock.Anything)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSeedService_LoadSampleData_EmptyDatabase(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	statsRepo := new(MockStatsRepository)
	svc := NewSeedService(userRepo, questionRepo, answerRepo, statsRepo)

	questionRepo.On("Stats").Return(&repository.QnAStatsRow{TotalQuestions: 0}, nil)
	userRepo.On("Exists", mock.AnythingOfType("string")).Return(false, nil)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)
	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(nil)
	answerRepo.On("Create", mock.AnythingOfType("*entity.Answer")).Return(nil)
	statsRepo.On("IncrementStat", entity.StatTotalQuestionsAsked, mock.AnythingOfType("int64")).Return(nil)

	// Act
	err := svc.LoadSampleData()

	// Assert
	require.NoError(t, err)
	userRepo.AssertNumberOfCalls(t, "Create", 3)
	questionRepo.AssertNumberOfCalls(t, "Create", 8)
	statsRepo.AssertCalled(t, "IncrementStat", entity.StatTotalQuestionsAsked, int64(8))
}

func TestSeedService_LoadSampleData_SkipsExistingUsers(t *testing.T) {
	// Arrange: занятые имена пропускаются, остальные данные загружаются
	userRepo := new(MockUserRepository)
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	statsRepo := new(MockStatsRepository)
	svc := NewSeedService(userRepo, questionRepo, answerRepo, statsRepo)

	questionRepo.On("Stats").Return(&repository.QnAStatsRow{TotalQuestions: 0}, nil)
	userRepo.On("Exists", "testuser1").Return(true, nil)
	userRepo.On("Exists", "testuser2").Return(false, nil)
	userRepo.On("Exists", "testuser3").Return(false, nil)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)
	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(nil)
	answerRepo.On("Create", mock.AnythingOfType("*entity.Answer")).Return(nil)
	statsRepo.On("IncrementStat", entity.StatTotalQuestionsAsked, mock.AnythingOfType("int64")).Return(nil)

	// Act
	err := svc.LoadSampleData()

	// Assert
	require.NoError(t, err)
	userRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestSeedService_SampleAnswersOnlyOnAnsweredQuestions(t *testing.T) {
	// Демонстрационный набор должен содержать хотя бы один
	// неотвеченный вопрос, чтобы был виден статус pending

	// Act
	questions := sampleQuestions()

	// Assert
	var pending int
	for _, q := range questions {
		if len(q.answers) == 0 {
			pending++
		}
	}
	assert.Equal(t, 8, len(questions))
	assert.Equal(t, 1, pending)
}
