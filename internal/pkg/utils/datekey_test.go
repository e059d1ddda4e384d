package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToUTCDay(t *testing.T) {
	t.Run("strips time of day", func(t *testing.T) {
		input := time.Date(2024, 1, 5, 17, 42, 9, 123, time.UTC)
		got := NormalizeToUTCDay(input)

		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("converts zoned timestamps to the UTC day", func(t *testing.T) {
		jakarta := time.FixedZone("WIB", 7*3600)
		input := time.Date(2024, 1, 6, 3, 0, 0, 0, jakarta)
		got := NormalizeToUTCDay(input)

		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := NormalizeToUTCDay(time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC))
		twice := NormalizeToUTCDay(once)

		assert.Equal(t, once, twice)
	})
}

func TestParseDayKey(t *testing.T) {
	t.Run("valid day key", func(t *testing.T) {
		got, err := ParseDayKey("2024-02-29")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rejects non matching strings", func(t *testing.T) {
		for _, dayKey := range []string{"", "2024/01/05", "05-01-2024", "2024-1-5", "2024-01-05T00:00:00Z"} {
			_, err := ParseDayKey(dayKey)
			assert.Error(t, err, dayKey)
		}
	})

	t.Run("rejects impossible calendar dates", func(t *testing.T) {
		for _, dayKey := range []string{"2024-02-30", "2023-02-29", "2024-13-01", "2024-00-10"} {
			_, err := ParseDayKey(dayKey)
			assert.Error(t, err, dayKey)
		}
	})

	t.Run("round trips through FormatDayKey", func(t *testing.T) {
		day, err := ParseDayKey("2024-07-15")

		assert.NoError(t, err)
		assert.Equal(t, "2024-07-15", FormatDayKey(day))
	})
}

func TestEnumerateDays(t *testing.T) {
	t.Run("single day when from equals to", func(t *testing.T) {
		day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
		days, err := EnumerateDays(day, day)

		assert.NoError(t, err)
		assert.Len(t, days, 1)
		assert.Equal(t, day, days[0])
	})

	t.Run("inclusive ascending enumeration", func(t *testing.T) {
		from := time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
		days, err := EnumerateDays(from, to)

		assert.NoError(t, err)
		assert.Len(t, days, 4)
		assert.Equal(t, "2024-01-30", FormatDayKey(days[0]))
		assert.Equal(t, "2024-01-31", FormatDayKey(days[1]))
		assert.Equal(t, "2024-02-01", FormatDayKey(days[2]))
		assert.Equal(t, "2024-02-02", FormatDayKey(days[3]))
	})

	t.Run("spans leap day", func(t *testing.T) {
		days, err := EnumerateDays(
			time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		)

		assert.NoError(t, err)
		assert.Len(t, days, 3)
		assert.Equal(t, "2024-02-29", FormatDayKey(days[1]))
	})

	t.Run("inverted bounds rejected", func(t *testing.T) {
		_, err := EnumerateDays(
			time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		)

		assert.Error(t, err)
	})
}
