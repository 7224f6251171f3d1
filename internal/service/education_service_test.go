package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/teen-support/internal/domain/entity"
	"github.com/yourusername/teen-support/internal/domain/repository"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// MockModuleRepository реализует repository.ModuleRepository
type MockModuleRepository struct {
	mock.Mock
}

func (m *MockModuleRepository) GetAll() ([]entity.EducationalModule, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EducationalModule), args.Error(1)
}

func (m *MockModuleRepository) GetByID(id uint) (*entity.EducationalModule, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EducationalModule), args.Error(1)
}

func (m *MockModuleRepository) GetByCategory(category string) ([]entity.EducationalModule, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EducationalModule), args.Error(1)
}

func (m *MockModuleRepository) Categories() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockModuleRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockModuleRepository) CreateBatch(modules []entity.EducationalModule) error {
	args := m.Called(modules)
	return args.Error(0)
}

// MockProgressRepository реализует repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) MarkCompleted(username string, moduleID uint, score int) error {
	args := m.Called(username, moduleID, score)
	return args.Error(0)
}

func (m *MockProgressRepository) Summary(username string) (*repository.ProgressSummaryRow, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProgressSummaryRow), args.Error(1)
}

func (m *MockProgressRepository) RecentCompleted(username string, limit int) ([]repository.CompletedModuleRow, error) {
	args := m.Called(username, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CompletedModuleRow), args.Error(1)
}

func TestEducationService_EnsureDefaultModules_SeedsEmptyTable(t *testing.T) {
	// Arrange
	moduleRepo := new(MockModuleRepository)
	svc := NewEducationService(moduleRepo, new(MockProgressRepository))

	moduleRepo.On("Count").Return(int64(0), nil)
	moduleRepo.On("CreateBatch", mock.AnythingOfType("[]entity.EducationalModule")).Return(nil)

	// Act
	err := svc.EnsureDefaultModules()

	// Assert
	require.NoError(t, err)
	moduleRepo.AssertCalled(t, "CreateBatch", mock.MatchedBy(func(modules []entity.EducationalModule) bool {
		return len(modules) == 7
	}))
}

func TestEducationService_EnsureDefaultModules_SkipsNonEmptyTable(t *testing.T) {
	// Arrange
	moduleRepo := new(MockModuleRepository)
	svc := NewEducationService(moduleRepo, new(MockProgressRepository))

	moduleRepo.On("Count").Return(int64(7), nil)

	// Act
	err := svc.EnsureDefaultModules()

	// Assert
	require.NoError(t, err)
	moduleRepo.AssertNotCalled(t, "CreateBatch", mock.Anything)
}

func TestEducationService_CompleteModule_ScoreValidation(t *testing.T) {
	// Arrange
	svc := NewEducationService(new(MockModuleRepository), new(MockProgressRepository))

	// Act
	err := svc.CompleteModule("quiet_owl", 1, 150)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Оценка вне 0-100 должна отклоняться")
}

func TestEducationService_CompleteModule_UnknownModule(t *testing.T) {
	// Arrange
	moduleRepo := new(MockModuleRepository)
	progressRepo := new(MockProgressRepository)
	svc := NewEducationService(moduleRepo, progressRepo)

	moduleRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	// Act
	err := svc.CompleteModule("quiet_owl", 99, 80)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	progressRepo.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestEducationService_CompleteModule_Success(t *testing.T) {
	// Arrange
	moduleRepo := new(MockModuleRepository)
	progressRepo := new(MockProgressRepository)
	svc := NewEducationService(moduleRepo, progressRepo)

	moduleRepo.On("GetByID", uint(2)).Return(&entity.EducationalModule{ID: 2}, nil)
	progressRepo.On("MarkCompleted", "quiet_owl", uint(2), 85).Return(nil)

	// Act
	err := svc.CompleteModule("quiet_owl", 2, 85)

	// Assert
	require.NoError(t, err)
	progressRepo.AssertExpectations(t)
}

func TestEducationService_GetProgress(t *testing.T) {
	// Arrange
	progressRepo := new(MockProgressRepository)
	svc := NewEducationService(new(MockModuleRepository), progressRepo)

	progressRepo.On("Summary", "quiet_owl").Return(&repository.ProgressSummaryRow{
		TotalModules:     7,
		CompletedModules: 3,
		AverageScore:     82.5,
	}, nil)
	progressRepo.On("RecentCompleted", "quiet_owl", 5).Return([]repository.CompletedModuleRow{}, nil)

	// Act
	summary, err := svc.GetProgress("quiet_owl")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.CompletedModules)
	assert.InDelta(t, 42.86, summary.CompletedPercent, 0.01, "Процент прохождения должен считаться от общего числа модулей")
}
