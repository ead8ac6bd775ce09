// Package date turns user supplied due dates into calendar dates.
package date

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	sigoerrors "github.com/abatilo/sigo/internal/errors"
)

const (
	keywordToday      = "today"
	keywordEndOfWeek  = "eow"
	keywordEndOfMonth = "eom"
)

// Parse accepts today, eow, eom or a YYYY-MM-DD date, relative to now.
func Parse(s string, now time.Time) (civil.Date, error) {
	today := civil.DateOf(now)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case keywordToday:
		return today, nil
	case keywordEndOfWeek:
		return EndOfWeek(today), nil
	case keywordEndOfMonth:
		return EndOfMonth(today), nil
	}

	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return civil.Date{}, sigoerrors.InvalidDateError{Value: s}
	}
	return d, nil
}

// EndOfWeek returns the Friday on or after d. Weeks run Saturday to Friday.
func EndOfWeek(d civil.Date) civil.Date {
	offset := (int(time.Friday) - int(d.In(time.UTC).Weekday()) + 7) % 7
	return d.AddDays(offset)
}

// EndOfMonth returns the last day of d's month.
func EndOfMonth(d civil.Date) civil.Date {
	// Day zero of the next month normalizes to the last day of this one.
	return civil.DateOf(time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC))
}
