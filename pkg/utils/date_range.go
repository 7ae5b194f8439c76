package utils

import (
	"strconv"
	"strings"
	"time"
)

// Separator between the two bounds of a date-range query parameter.
const dateRangeSeparator = "..."

// ParseDateRange parses "start...end" where each side is RFC3339 or epoch
// seconds (fractions allowed) and either side may be empty for an open
// bound. Returns ErrInvalidDateRange on malformed input.
func ParseDateRange(raw string) (start, end *time.Time, err error) {
	parts := strings.SplitN(raw, dateRangeSeparator, 2)
	if len(parts) != 2 {
		return nil, nil, ErrInvalidDateRange
	}

	bounds := make([]*time.Time, 2)
	for i, part := range parts {
		if part == "" {
			continue
		}
		parsed, parseErr := parseTimestamp(part)
		if parseErr != nil {
			return nil, nil, ErrInvalidDateRange
		}
		bounds[i] = &parsed
	}

	return bounds[0], bounds[1], nil
}

func parseTimestamp(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	epoch, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return time.Time{}, err
	}
	seconds := int64(epoch)
	nanos := int64((epoch - float64(seconds)) * float64(time.Second))
	return time.Unix(seconds, nanos).UTC(), nil
}
