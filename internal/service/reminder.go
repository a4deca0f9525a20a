package service

import (
	"context"
	"fmt"

	"fechas/internal/domain"
	"fechas/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Notifier delivers a text message to a user
type Notifier interface {
	Notify(userID int64, text string) error
}

// ReminderService notifies users about upcoming anniversaries
type ReminderService struct {
	eventRepo repository.EventRepository
	logRepo   repository.ReminderLogRepository
	notifier  Notifier
	limiter   *rate.Limiter
	clock     Clock
	logger    *zap.Logger
}

// NewReminderService creates a new reminder service
func NewReminderService(
	eventRepo repository.EventRepository,
	logRepo repository.ReminderLogRepository,
	notifier Notifier,
	limiter *rate.Limiter,
	clock Clock,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		eventRepo: eventRepo,
		logRepo:   logRepo,
		notifier:  notifier,
		limiter:   limiter,
		clock:     clock,
		logger:    logger,
	}
}

// SendReminders notifies owners of events whose anniversary is today or tomorrow.
// It runs at most once per local day; later calls on the same day send nothing.
// A failed delivery is logged and skipped. Returns the number of reminders sent.
func (s *ReminderService) SendReminders(ctx context.Context) (int, error) {
	events, err := s.eventRepo.GetAllEvents()
	if err != nil {
		s.logger.Error("Failed to load events for reminders", zap.Error(err))
		return 0, err
	}

	today := s.clock.Today()

	claimed, err := s.logRepo.ClaimDay(today.Time())
	if err != nil {
		s.logger.Error("Failed to claim reminder day", zap.Error(err), zap.String("today", today.String()))
		return 0, err
	}
	if !claimed {
		s.logger.Debug("Reminders already sent", zap.String("today", today.String()))
		return 0, nil
	}

	s.logger.Info("Checking anniversaries",
		zap.String("today", today.String()),
		zap.Int("events", len(events)),
	)

	sent := 0
	for _, e := range events {
		text, ok := reminderText(domain.NewEventView(e, today))
		if !ok {
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return sent, err
		}

		if err := s.notifier.Notify(e.UserID, text); err != nil {
			s.logger.Warn("Failed to send reminder",
				zap.Error(err),
				zap.Int64("user_id", e.UserID),
				zap.Int("event_id", e.ID),
			)
			continue
		}
		sent++
	}

	s.logger.Info("Reminders sent", zap.Int("sent", sent))
	return sent, nil
}

// reminderText builds the notification for v, if one is due
func reminderText(v domain.EventView) (string, bool) {
	switch {
	case v.Anniversary == "mañana":
		return fmt.Sprintf("⏰ Mañana es el aniversario de «%s»\n%s", v.Event.Title, v.Text), true
	case v.Anniversary == "hoy" && v.Difference.Years > 0:
		return fmt.Sprintf("🎉 Hoy es el aniversario de «%s»\n%s", v.Event.Title, v.Text), true
	}
	return "", false
}
