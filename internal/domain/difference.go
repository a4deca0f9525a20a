package domain

import (
	"fmt"
	"strings"
)

// Difference is the elapsed time between two dates in calendar units.
// Between guarantees non-negative components and Months in [0, 11] when
// the later date is not before the earlier one.
type Difference struct {
	Years  int
	Months int
	Days   int
}

// Between subtracts earlier from later component-wise, borrowing days and months.
// It does not check ordering; use Since for that.
func Between(earlier, later Date) Difference {
	years := later.year - earlier.year
	months := later.month - earlier.month
	days := later.day - earlier.day

	// Borrow from the earlier date's month, not from the month preceding later.
	if days < 0 {
		days += daysIn(earlier.year, earlier.month)
		months--
	}

	if months < 0 {
		months += 12
		years--
	}

	return Difference{Years: years, Months: months, Days: days}
}

// Since is Between that rejects a later date preceding the earlier one
func Since(earlier, later Date) (Difference, error) {
	if later.Before(earlier) {
		return Difference{}, fmt.Errorf("%w: %s is before %s", ErrChronologicalOrder, later, earlier)
	}
	return Between(earlier, later), nil
}

// ComputeDifference parses two YYYY-MM-DD strings and returns how long ago earlier was from later
func ComputeDifference(earlier, later string) (Difference, error) {
	from, err := ParseDate(earlier)
	if err != nil {
		return Difference{}, err
	}
	to, err := ParseDate(later)
	if err != nil {
		return Difference{}, err
	}
	return Since(from, to)
}

// Text returns the difference as a Spanish sentence, e.g. "Hace 2 años, 1 mes y 20 días"
func (d Difference) Text() string {
	years := plural(d.Years, "año", "años")
	months := plural(d.Months, "mes", "meses")
	days := plural(d.Days, "día", "días")

	switch {
	case d.Years > 0:
		switch {
		case d.Months > 0 && d.Days > 0:
			return fmt.Sprintf("Hace %d %s, %d %s y %d %s", d.Years, years, d.Months, months, d.Days, days)
		case d.Months > 0:
			return fmt.Sprintf("Hace %d %s y %d %s", d.Years, years, d.Months, months)
		case d.Days > 0:
			return fmt.Sprintf("Hace %d %s y %d %s", d.Years, years, d.Days, days)
		default:
			return fmt.Sprintf("Hace %d %s", d.Years, years)
		}
	case d.Months > 0:
		if d.Days > 0 {
			return fmt.Sprintf("Hace %d %s y %d %s", d.Months, months, d.Days, days)
		}
		return fmt.Sprintf("Hace %d %s", d.Months, months)
	case d.Days > 0:
		return fmt.Sprintf("Hace %d %s", d.Days, days)
	case d.Years == 0 && d.Months == 0 && d.Days == 0:
		return "Hoy"
	}

	// Negative components.
	return "??"
}

// Anniversary returns a hint about the next anniversary seen from reference:
// "hoy", "mañana", "aniversario en N días" or "" when it is more than a month away.
// The countdown uses the length of reference's month.
func (d Difference) Anniversary(reference Date) string {
	if d.Months == 0 && d.Days == 0 {
		return "hoy"
	}

	if d.Months != 11 {
		return ""
	}

	remaining := reference.DaysInMonth() - d.Days
	if remaining == 1 {
		return "mañana"
	}
	return fmt.Sprintf("aniversario en %d días", remaining)
}

const (
	barFull  = "■"
	barEmpty = "□"
	barSize  = 12
)

// Bar draws the months component as a 12 glyph progress bar
func (d Difference) Bar() string {
	filled := d.Months
	if filled < 0 {
		filled = 0
	}
	if filled > barSize {
		filled = barSize
	}
	return strings.Repeat(barFull, filled) + strings.Repeat(barEmpty, barSize-filled)
}

// plural picks the plural noun only for values greater than one
func plural(n int, one, many string) string {
	if n > 1 {
		return many
	}
	return one
}
