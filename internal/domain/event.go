package domain

import "time"

// Event is a dated milestone stored by a user
type Event struct {
	ID        int
	UserID    int64
	Title     string
	Date      Date
	CreatedAt time.Time
}

// EventView is an event rendered against a given day
type EventView struct {
	Event       Event
	Difference  Difference
	Text        string
	Bar         string
	Anniversary string
}

// NewEventView renders e as seen from today
func NewEventView(e Event, today Date) EventView {
	diff := Between(e.Date, today)
	return EventView{
		Event:       e,
		Difference:  diff,
		Text:        diff.Text(),
		Bar:         diff.Bar(),
		Anniversary: diff.Anniversary(today),
	}
}

// ButtonLabel returns the short label used in event lists
func (v EventView) ButtonLabel() string {
	return v.Event.Title + " · " + v.Text
}
