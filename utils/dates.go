package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseFlexibleDate accepts an RFC 3339 date-time (a trailing Z means UTC) or a
// plain YYYY-MM-DD date, truncated to the date. An empty string means no date
// and yields nil; anything else unparseable is an error so malformed input is
// never silently dropped.
func ParseFlexibleDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d, nil
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d, nil
	}

	return nil, fmt.Errorf("invalid date %q: expected RFC 3339 or YYYY-MM-DD", value)
}

// FormatDate renders a nullable date as YYYY-MM-DD, or "" when nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
