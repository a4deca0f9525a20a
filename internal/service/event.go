package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fechas/internal/domain"
	"fechas/internal/repository"
)

const eventsPageSize = 7

// EventService handles event storage and rendering
type EventService struct {
	eventRepo repository.EventRepository
	clock     Clock
}

// NewEventService creates a new event service
func NewEventService(eventRepo repository.EventRepository, clock Clock) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		clock:     clock,
	}
}

// Today returns the day events are rendered against
func (s *EventService) Today() domain.Date {
	return s.clock.Today()
}

// SaveEvent validates and stores an event, returning how it renders today
func (s *EventService) SaveEvent(userID int64, title, dateStr string) (domain.EventView, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.EventView{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return domain.EventView{}, ErrTitleTooLong
	}

	date, err := domain.ParseDate(strings.TrimSpace(dateStr))
	if err != nil {
		return domain.EventView{}, err
	}

	today := s.clock.Today()
	if _, err := domain.Since(date, today); err != nil {
		return domain.EventView{}, fmt.Errorf("event in the future: %w", err)
	}

	if err := s.eventRepo.SaveEvent(userID, title, date.Time()); err != nil {
		return domain.EventView{}, err
	}

	event := domain.Event{UserID: userID, Title: title, Date: date}
	return domain.NewEventView(event, today), nil
}

// GetEventsPage returns a page of rendered events and the total number of pages
func (s *EventService) GetEventsPage(userID int64, page int) ([]domain.EventView, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * eventsPageSize

	events, err := s.eventRepo.GetEvents(userID, eventsPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.eventRepo.GetTotalEventsCount(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (total + eventsPageSize - 1) / eventsPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	today := s.clock.Today()
	views := make([]domain.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, domain.NewEventView(e, today))
	}

	return views, totalPages, nil
}

// GetEvent returns one rendered event, or nil if the user has no such event
func (s *EventService) GetEvent(userID int64, eventID int) (*domain.EventView, error) {
	event, err := s.eventRepo.GetEventByID(userID, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	view := domain.NewEventView(*event, s.clock.Today())
	return &view, nil
}

// DeleteEvent removes one of the user's events
func (s *EventService) DeleteEvent(userID int64, eventID int) error {
	return s.eventRepo.DeleteEvent(userID, eventID)
}
