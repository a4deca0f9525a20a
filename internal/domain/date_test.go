package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Date
		expectedErr error
	}{
		{
			name:     "valid date",
			input:    "2020-10-07",
			expected: Date{year: 2020, month: 10, day: 7},
		},
		{
			name:     "leap day",
			input:    "2024-02-29",
			expected: Date{year: 2024, month: 2, day: 29},
		},
		{
			name:        "leap day in common year",
			input:       "2023-02-29",
			expectedErr: ErrInvalidDay,
		},
		{
			name:        "day zero",
			input:       "2023-05-00",
			expectedErr: ErrInvalidDay,
		},
		{
			name:        "month thirteen",
			input:       "2023-13-01",
			expectedErr: ErrInvalidMonth,
		},
		{
			name:        "month zero",
			input:       "2023-00-10",
			expectedErr: ErrInvalidMonth,
		},
		{
			name:        "single digit month",
			input:       "2023-1-01",
			expectedErr: ErrMalformedDate,
		},
		{
			name:        "compact format",
			input:       "20230101",
			expectedErr: ErrMalformedDate,
		},
		{
			name:        "letters",
			input:       "abcd-01-01",
			expectedErr: ErrMalformedDate,
		},
		{
			name:        "signed year",
			input:       "+023-01-01",
			expectedErr: ErrMalformedDate,
		},
		{
			name:        "slashes",
			input:       "2023/01/01",
			expectedErr: ErrMalformedDate,
		},
		{
			name:        "with time",
			input:       "2023-01-01T10:00:00",
			expectedErr: ErrMalformedDate,
		},
		{
			name:        "empty",
			input:       "",
			expectedErr: ErrMalformedDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, date.IsZero())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, date)
			assert.Equal(t, tt.input, date.String())
		})
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	ts := time.Date(2024, 6, 15, 23, 30, 0, 0, loc)

	date := DateOf(ts)

	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, 6, date.Month())
	assert.Equal(t, 15, date.Day())
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), date.Time())
}

func TestDate_Before(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{name: "earlier year", a: "2022-12-31", b: "2023-01-01", expected: true},
		{name: "earlier month", a: "2023-01-31", b: "2023-02-01", expected: true},
		{name: "earlier day", a: "2023-02-01", b: "2023-02-02", expected: true},
		{name: "same day", a: "2023-02-01", b: "2023-02-01", expected: false},
		{name: "later", a: "2023-02-02", b: "2023-02-01", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseDate(tt.a)
			assert.NoError(t, err)
			b, err := ParseDate(tt.b)
			assert.NoError(t, err)

			assert.Equal(t, tt.expected, a.Before(b))
		})
	}
}
