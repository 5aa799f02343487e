package dateutil

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyDate = errors.New("empty date string")

// Parse accepts an ISO-8601 timestamp or a bare YYYY-MM-DD date. A bare date
// is stamped with the current wall-clock time instead of midnight, so entries
// recorded "today" sort after earlier entries of the same day. Kompatibel
// dengan perilaku input tanggal di form lama.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}

	if strings.Contains(s, "T") {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		return time.Parse("2006-01-02T15:04:05", s)
	}

	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	now := time.Now()
	return time.Date(d.Year(), d.Month(), d.Day(), now.Hour(), now.Minute(), now.Second(), 0, time.Local), nil
}

// ParseOr falls back when the input is empty or malformed.
func ParseOr(s string, fallback time.Time) time.Time {
	t, err := Parse(s)
	if err != nil {
		return fallback
	}
	return t
}

// DayKey formats a timestamp as the YYYY-MM-DD bucket key used by the
// per-date report groupings.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// EndOfRange mirrors the report endpoints: an endDate query param is
// inclusive, implemented by extending the upper bound by 24 hours.
func EndOfRange(t time.Time) time.Time {
	return t.Add(24 * time.Hour)
}
