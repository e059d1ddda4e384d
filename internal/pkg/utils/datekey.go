package utils

import (
	"fmt"
	"regexp"
	"time"
	"trekora-service/internal/pkg/constvars"
	"trekora-service/internal/pkg/exceptions"
)

var dayKeyPattern = regexp.MustCompile(constvars.RegexDateYYYYMMDD)

// NormalizeToUTCDay truncates any timestamp to its UTC calendar day,
// discarding time-of-day and timezone offset. Idempotent.
func NormalizeToUTCDay(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDayKey renders a day as YYYY-MM-DD.
func FormatDayKey(day time.Time) string {
	return day.UTC().Format(constvars.DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD string into a UTC day. Strings that do not
// match the pattern, or that name an impossible calendar date, are rejected.
func ParseDayKey(dayKey string) (time.Time, error) {
	if !dayKeyPattern.MatchString(dayKey) {
		return time.Time{}, exceptions.ErrInvalidDateFormat(fmt.Errorf("%q does not match YYYY-MM-DD", dayKey))
	}
	day, err := time.ParseInLocation(constvars.DayKeyLayout, dayKey, time.UTC)
	if err != nil {
		// covers impossible calendar dates such as 2024-02-30
		return time.Time{}, exceptions.ErrInvalidDateFormat(err)
	}
	return day, nil
}

// EnumerateDays produces every day from 'from' to 'to' inclusive, ascending.
func EnumerateDays(from, to time.Time) ([]time.Time, error) {
	from = NormalizeToUTCDay(from)
	to = NormalizeToUTCDay(to)
	if from.After(to) {
		return nil, exceptions.ErrInvalidDateRange(fmt.Errorf("from %s is after to %s", FormatDayKey(from), FormatDayKey(to)))
	}

	days := make([]time.Time, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}
