package postgres

import (
	"database/sql"
	"time"
)

// ReminderLogRepo implements repository.ReminderLogRepository
type ReminderLogRepo struct {
	db *sql.DB
}

// NewReminderLogRepo creates a new reminder log repository
func NewReminderLogRepo(db *sql.DB) *ReminderLogRepo {
	return &ReminderLogRepo{db: db}
}

// ClaimDay marks day as handled. It returns false if it was already claimed,
// so restarts on the same day do not resend reminders.
func (r *ReminderLogRepo) ClaimDay(day time.Time) (bool, error) {
	query := `
		INSERT INTO reminder_runs (sent_on)
		VALUES ($1)
		ON CONFLICT (sent_on) DO NOTHING
	`

	result, err := r.db.Exec(query, day)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
