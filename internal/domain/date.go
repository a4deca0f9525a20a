package domain

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the only accepted date format
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day or location.
// A non-zero Date always holds a day that exists in its year and month.
type Date struct {
	year  int
	month int
	day   int
}

// NewDate validates and builds a Date
func NewDate(year, month, day int) (Date, error) {
	days, err := DaysInMonth(year, month)
	if err != nil {
		return Date{}, err
	}
	if day < 1 || day > days {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDay, year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// ParseDate parses a YYYY-MM-DD string.
// Exactly four year digits, two month digits and two day digits are accepted.
func ParseDate(s string) (Date, error) {
	if len(s) != len(DateLayout) || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	year, ok := digits(s[0:4])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	month, ok := digits(s[5:7])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	day, ok := digits(s[8:10])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	return NewDate(year, month, day)
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d falls on an earlier day than other
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// DaysInMonth returns the length of d's month
func (d Date) DaysInMonth() int {
	return daysIn(d.year, d.month)
}

// Time returns midnight UTC of d, used for storage
func (d Date) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// String returns d in YYYY-MM-DD format
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func digits(s string) (int, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
