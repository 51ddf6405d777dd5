package normalize

import (
	"strings"
	"time"
)

// Timestamp formats found in exported scheduling data, tried in order; first
// success wins. Slash forms are US month-first. Keep the ordering stable:
// it is the tie-breaker for ambiguous inputs and tests pin it down.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"01/02/2006",
	"1/2/2006",
}

// ParseTimestamp attempts to parse a date/time string in multiple common
// formats. Returns nil if the input is empty or unparseable.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, fmt := range timestampFormats {
		if t, err := time.Parse(fmt, s); err == nil {
			return &t
		}
	}
	return nil
}
