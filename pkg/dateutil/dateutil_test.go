package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRFC3339(t *testing.T) {
	got, err := Parse("2026-08-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC), got)
}

func TestParseWithoutZone(t *testing.T) {
	got, err := Parse("2026-08-15T10:30:00")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestParseBareDateGetsCurrentClock(t *testing.T) {
	before := time.Now()
	got, err := Parse("2026-08-15")
	require.NoError(t, err)
	after := time.Now()

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 15, got.Day())

	// Jam diambil dari wall-clock saat parsing, bukan tengah malam
	clock := time.Duration(got.Hour())*time.Hour + time.Duration(got.Minute())*time.Minute + time.Duration(got.Second())*time.Second
	lo := time.Duration(before.Hour())*time.Hour + time.Duration(before.Minute())*time.Minute + time.Duration(before.Second())*time.Second
	hi := time.Duration(after.Hour())*time.Hour + time.Duration(after.Minute())*time.Minute + time.Duration(after.Second())*time.Second
	if lo <= hi { // guard against the test straddling midnight
		assert.GreaterOrEqual(t, clock, lo)
		assert.LessOrEqual(t, clock, hi)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmptyDate)

	_, err = Parse("not-a-date")
	assert.Error(t, err)
}

func TestParseOrFallback(t *testing.T) {
	fallback := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fallback, ParseOr("", fallback))
	assert.Equal(t, fallback, ParseOr("garbage", fallback))

	got := ParseOr("2026-08-15T10:30:00Z", fallback)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.August, got.Month())
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2026-08-15", DayKey(time.Date(2026, 8, 15, 23, 59, 0, 0, time.UTC)))
}

func TestEndOfRangeIsInclusive(t *testing.T) {
	end := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	got := EndOfRange(end)
	assert.Equal(t, time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC), got)
}
