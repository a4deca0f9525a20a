package service

import (
	"time"

	"fechas/internal/domain"
)

// Clock tells which calendar day it is in the configured location
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a clock reading the system time in location
func NewClock(location *time.Location) Clock {
	if location == nil {
		location = time.UTC
	}
	return Clock{location: location, now: time.Now}
}

// Today returns the current date in the clock's location
func (c Clock) Today() domain.Date {
	return domain.DateOf(c.now().In(c.location))
}
