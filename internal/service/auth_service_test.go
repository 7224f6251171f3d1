package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/teen-support/internal/domain/entity"
	apperrors "github.com/yourusername/teen-support/internal/pkg/errors"
)

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Exists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(username string, at time.Time) error {
	args := m.Called(username, at)
	return args.Error(0)
}

func (m *MockUserRepository) Deactivate(username string) error {
	args := m.Called(username)
	return args.Error(0)
}

func (m *MockUserRepository) CountActive() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_Register_Success(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	userRepo.On("Exists", "quiet_owl").Return(false, nil)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)

	// Act
	user, err := svc.Register("quiet_owl", 15)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "quiet_owl", user.Username)
	assert.True(t, user.IsActive, "Новый пользователь должен быть активным")
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_AgeValidation(t *testing.T) {
	testCases := []struct {
		name    string
		age     int
		wantErr bool
	}{
		{"Нижняя граница", 13, false},
		{"Верхняя граница", 19, false},
		{"Слишком молод", 12, true},
		{"Слишком взрослый", 20, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			userRepo := new(MockUserRepository)
			svc := NewAuthService(userRepo)
			if !tc.wantErr {
				userRepo.On("Exists", "quiet_owl").Return(false, nil)
				userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil)
			}

			// Act
			_, err := svc.Register("quiet_owl", tc.age)

			// Assert
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation, "Возраст вне 13-19 должен отклоняться")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Register_ReservedUsername(t *testing.T) {
	// Arrange
	svc := NewAuthService(new(MockUserRepository))

	// Act: "my_admin_x" содержит зарезервированное слово
	_, err := svc.Register("my_admin_x", 15)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation, "Имя со служебным словом должно отклоняться")
}

func TestAuthService_Register_TakenByDeactivatedAccount(t *testing.T) {
	// Arrange: имя занято даже деактивированным аккаунтом
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	userRepo.On("Exists", "quiet_owl").Return(true, nil)

	// Act
	_, err := svc.Register("quiet_owl", 15)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrConflict, "Занятое имя должно отклоняться")
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_SuggestUsernames_SkipsTaken(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	userRepo.On("Exists", "quiet_owl1").Return(true, nil)
	userRepo.On("Exists", "quiet_owl2").Return(false, nil)
	userRepo.On("Exists", "quiet_owl3").Return(false, nil)

	// Act
	suggestions := svc.SuggestUsernames("quiet_owl", 2)

	// Assert
	assert.Equal(t, []string{"quiet_owl2", "quiet_owl3"}, suggestions)
}

func TestAuthService_SuggestUsernames_StorageErrorsShortenList(t *testing.T) {
	// Arrange: ошибки проверки не прерывают подбор, кандидат просто пропускается
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	userRepo.On("Exists", "quiet_owl1").Return(false, assert.AnError)
	userRepo.On("Exists", "quiet_owl2").Return(false, nil)

	// Act
	suggestions := svc.SuggestUsernames("quiet_owl", 1)

	// Assert
	assert.Equal(t, []string{"quiet_owl2"}, suggestions)
}

func TestAuthService_Login_Success(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	userRepo.On("GetByUsername", "quiet_owl").Return(&entity.User{
		Username: "quiet_owl", Age: 15, IsActive: true,
	}, nil)
	userRepo.On("UpdateLastLogin", "quiet_owl", mock.AnythingOfType("time.Time")).Return(nil)

	// Act
	user, err := svc.Login("quiet_owl")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "quiet_owl", user.Username)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	userRepo.On("GetByUsername", "stranger").Return(nil, apperrors.ErrNotFound)

	// Act
	_, err := svc.Login("stranger")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "Вход несуществующего пользователя должен давать not-found")
}

func TestAuthService_Deactivate(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	userRepo.On("Deactivate", "quiet_owl").Return(nil)

	// Act
	err := svc.Deactivate("quiet_owl")

	// Assert
	require.NoError(t, err)
	userRepo.AssertCalled(t, "Deactivate", "quiet_owl")
}
