package testutil

import (
	"fechas/internal/domain"
	"testing"
	"time"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// MustDate parses a YYYY-MM-DD string or fails the test
func MustDate(t testing.TB, s string) domain.Date {
	t.Helper()
	date, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", s, err)
	}
	return date
}

// NewTestEvent creates a test event dated on the given YYYY-MM-DD day
func NewTestEvent(t testing.TB, id int, userID int64, title, date string) *domain.Event {
	return &domain.Event{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Date:      MustDate(t, date),
		CreatedAt: time.Now(),
	}
}
