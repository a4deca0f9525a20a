package service

import (
	"fmt"
	"testing"

	"fechas/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_CheckPassword(t *testing.T) {
	tests := []struct {
		name           string
		botPassword    string
		inputPassword  string
		expectedResult bool
	}{
		{
			name:           "correct password",
			botPassword:    "secret123",
			inputPassword:  "secret123",
			expectedResult: true,
		},
		{
			name:           "incorrect password",
			botPassword:    "secret123",
			inputPassword:  "wrong",
			expectedResult: false,
		},
		{
			name:           "empty password",
			botPassword:    "secret123",
			inputPassword:  "",
			expectedResult: false,
		},
		{
			name:           "case sensitive",
			botPassword:    "Secret123",
			inputPassword:  "secret123",
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			service := NewAuthService(mockRepo, tt.botPassword)

			assert.Equal(t, tt.expectedResult, service.CheckPassword(tt.inputPassword))
		})
	}
}

func TestAuthService_IsAuthorized(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockReturn    bool
		mockError     error
		expectedAuth  bool
		expectedError bool
	}{
		{
			name:         "authorized user",
			userID:       123,
			mockReturn:   true,
			expectedAuth: true,
		},
		{
			name:         "unauthorized user",
			userID:       456,
			mockReturn:   false,
			expectedAuth: false,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("IsAuthorized", tt.userID).Return(tt.mockReturn, tt.mockError)

			service := NewAuthService(mockRepo, "password")
			authorized, err := service.IsAuthorized(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAuth, authorized)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_IsAuthorized_CachesPositiveAnswer(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("IsAuthorized", int64(123)).Return(true, nil).Once()

	service := NewAuthService(mockRepo, "password")

	for i := 0; i < 3; i++ {
		authorized, err := service.IsAuthorized(123)
		assert.NoError(t, err)
		assert.True(t, authorized)
	}

	mockRepo.AssertNumberOfCalls(t, "IsAuthorized", 1)
}

func TestAuthService_IsAuthorized_DoesNotCacheNegativeAnswer(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("IsAuthorized", int64(123)).Return(false, nil).Twice()

	service := NewAuthService(mockRepo, "password")

	for i := 0; i < 2; i++ {
		authorized, err := service.IsAuthorized(123)
		assert.NoError(t, err)
		assert.False(t, authorized)
	}

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Authorize(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		mockError     error
		expectRepo    bool
		expectedAuth  bool
		expectedError bool
	}{
		{
			name:         "correct password",
			password:     "password",
			expectRepo:   true,
			expectedAuth: true,
		},
		{
			name:         "wrong password",
			password:     "nope",
			expectRepo:   false,
			expectedAuth: false,
		},
		{
			name:          "database error",
			password:      "password",
			mockError:     fmt.Errorf("db error"),
			expectRepo:    true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			if tt.expectRepo {
				mockRepo.On("AuthorizeUser", int64(123)).Return(tt.mockError)
			}

			service := NewAuthService(mockRepo, "password")
			authorized, err := service.Authorize(123, tt.password)

			if tt.expectedError {
				assert.Error(t, err)
				assert.False(t, authorized)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAuth, authorized)
			}

			mockRepo.AssertExpectations(t)
			if !tt.expectRepo {
				mockRepo.AssertNotCalled(t, "AuthorizeUser", int64(123))
			}
		})
	}
}

func TestAuthService_Authorize_FillsCache(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("AuthorizeUser", int64(123)).Return(nil)

	service := NewAuthService(mockRepo, "password")

	authorized, err := service.Authorize(123, "password")
	assert.NoError(t, err)
	assert.True(t, authorized)

	authorized, err = service.IsAuthorized(123)
	assert.NoError(t, err)
	assert.True(t, authorized)

	mockRepo.AssertNotCalled(t, "IsAuthorized", int64(123))
}

func TestAuthService_EnsureUserExists(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("EnsureUserExists", int64(123)).Return(nil)

	service := NewAuthService(mockRepo, "password")
	err := service.EnsureUserExists(123)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
