package handler

import (
	"errors"
	"time"
)

// parseDateParam accepts the YYYY-MM-DD form the UI sends and full RFC 3339
// timestamps from API clients.
func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("unrecognized date format")
}

func endOfDay(t time.Time) time.Time {
	return t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
