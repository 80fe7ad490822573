package service

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts are the formats the legacy frontend has been observed to
// send: full RFC3339 (with Z or a numeric offset), a zone-less datetime, and
// a bare date.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 input string. A trailing Z is handled by
// the RFC3339 layout; zone-less values are taken as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, trimmed); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func parseOptionalTimestamp(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	ts, err := ParseTimestamp(*value)
	if err != nil {
		return nil, ValidationError{Message: fmt.Sprintf("Invalid date format for '%s'", field)}
	}
	return &ts, nil
}
