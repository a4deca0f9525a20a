package domain

import "time"

// User is a bot user gated by the shared password
type User struct {
	UserID     int64
	Authorized bool
	CreatedAt  time.Time
}

// UserState is the step of the conversation a user is in
type UserState string

const (
	StateIdle         UserState = "idle"
	StateWaitingTitle UserState = "waiting_title"
	StateWaitingDate  UserState = "waiting_date"
)

// StateData holds what the user typed so far while adding an event
type StateData struct {
	State        UserState
	CurrentTitle string
	MessageID    int
}
