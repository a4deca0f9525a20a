package domain

import "errors"

var (
	// ErrMalformedDate is returned when a date string is not in YYYY-MM-DD form
	ErrMalformedDate = errors.New("malformed date, expected YYYY-MM-DD")

	// ErrInvalidMonth is returned for months outside 1-12
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDay is returned for days that do not exist in their month
	ErrInvalidDay = errors.New("invalid day")

	// ErrChronologicalOrder is returned when the later date precedes the earlier one
	ErrChronologicalOrder = errors.New("later date precedes earlier date")
)
