package postgres

import (
	"database/sql"
	"time"

	"fechas/internal/domain"
)

// EventRepo implements repository.EventRepository
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo creates a new event repository
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (domain.Event, error) {
	var e domain.Event
	var eventDate time.Time

	if err := s.Scan(&e.ID, &e.UserID, &e.Title, &eventDate, &e.CreatedAt); err != nil {
		return domain.Event{}, err
	}

	// DATE columns come back as midnight in the driver's location
	e.Date = domain.DateOf(eventDate)
	return e, nil
}

// SaveEvent stores a titled date for the user
func (r *EventRepo) SaveEvent(userID int64, title string, date time.Time) error {
	query := `
		INSERT INTO events (user_id, title, event_date)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, userID, title, date)
	return err
}

// GetEvents returns a page of the user's events, most recent date first
func (r *EventRepo) GetEvents(userID int64, limit, offset int) ([]domain.Event, error) {
	query := `
		SELECT id, user_id, title, event_date, created_at
		FROM events
		WHERE user_id = $1
		ORDER BY event_date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// GetTotalEventsCount returns how many events the user has stored
func (r *EventRepo) GetTotalEventsCount(userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM events WHERE user_id = $1`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// GetEventByID returns one of the user's events, or nil if it does not exist
func (r *EventRepo) GetEventByID(userID int64, eventID int) (*domain.Event, error) {
	query := `
		SELECT id, user_id, title, event_date, created_at
		FROM events
		WHERE id = $1 AND user_id = $2
	`

	e, err := scanEvent(r.db.QueryRow(query, eventID, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// DeleteEvent removes one of the user's events
func (r *EventRepo) DeleteEvent(userID int64, eventID int) error {
	query := `DELETE FROM events WHERE id = $1 AND user_id = $2`

	_, err := r.db.Exec(query, eventID, userID)
	return err
}

// GetAllEvents returns every stored event of authorized users, for reminders
func (r *EventRepo) GetAllEvents() ([]domain.Event, error) {
	query := `
		SELECT e.id, e.user_id, e.title, e.event_date, e.created_at
		FROM events e
		JOIN users u ON u.user_id = e.user_id
		WHERE u.authorized_at IS NOT NULL
		ORDER BY e.user_id, e.event_date
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
