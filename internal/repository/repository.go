package repository

import (
	"time"

	"fechas/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// EventRepository defines event data operations
type EventRepository interface {
	SaveEvent(userID int64, title string, date time.Time) error
	GetEvents(userID int64, limit, offset int) ([]domain.Event, error)
	GetTotalEventsCount(userID int64) (int, error)
	GetEventByID(userID int64, eventID int) (*domain.Event, error)
	DeleteEvent(userID int64, eventID int) error
	GetAllEvents() ([]domain.Event, error)
}

// ReminderLogRepository records the days reminders were sent
type ReminderLogRepository interface {
	ClaimDay(day time.Time) (bool, error)
}
