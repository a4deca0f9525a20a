package testutil

import (
	"fechas/internal/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockEventRepository is a mock for EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) SaveEvent(userID int64, title string, date time.Time) error {
	args := m.Called(userID, title, date)
	return args.Error(0)
}

func (m *MockEventRepository) GetEvents(userID int64, limit, offset int) ([]domain.Event, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) GetTotalEventsCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) GetEventByID(userID int64, eventID int) (*domain.Event, error) {
	args := m.Called(userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) DeleteEvent(userID int64, eventID int) error {
	args := m.Called(userID, eventID)
	return args.Error(0)
}

func (m *MockEventRepository) GetAllEvents() ([]domain.Event, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}

// MockReminderLogRepository is a mock for ReminderLogRepository
type MockReminderLogRepository struct {
	mock.Mock
}

func (m *MockReminderLogRepository) ClaimDay(day time.Time) (bool, error) {
	args := m.Called(day)
	return args.Bool(0), args.Error(1)
}
