package redis

import "time"

// timeLayout is the persisted timestamp format. RFC 3339 with nanoseconds
// keeps timestamps sortable and round-trippable.
const timeLayout = time.RFC3339Nano

func parseStoredTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(timeLayout, s)
}
