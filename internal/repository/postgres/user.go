package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized reports whether the user has entered the password.
// Unknown users are not authorized.
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorizedAt sql.NullTime

	query := `SELECT authorized_at FROM users WHERE user_id = $1`

	err := r.db.QueryRow(query, userID).Scan(&authorizedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorizedAt.Valid, nil
}

// AuthorizeUser stamps the moment the user got access, creating the row if needed
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized_at)
		VALUES ($1, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET authorized_at = COALESCE(users.authorized_at, NOW())
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureUserExists creates an unauthorized user row if none exists
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}
