package domain

import "fmt"

// IsLeapYear reports whether year has a February 29 in the Gregorian calendar
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1-12) of year
func DaysInMonth(year, month int) (int, error) {
	days := daysIn(year, month)
	if days == 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return days, nil
}

// daysIn returns 0 for months outside 1-12
func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}
