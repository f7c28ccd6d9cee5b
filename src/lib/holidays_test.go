package lib

import (
	"testing"
	"time"

	holiday_jp "github.com/holiday-jp/holiday_jp-go"
	"github.com/stretchr/testify/assert"
)

func TestHolidaysBetween(t *testing.T) {
	NewHolidayChecker(func(d time.Time) bool {
		return d.Day() == 1 || d.Day() == 15
	})
	defer NewHolidayChecker(holiday_jp.IsHoliday)

	t.Run("bounds are inclusive", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		hs := HolidaysBetween(start, end)
		assert.Equal(t, []time.Time{start, end}, hs)
	})

	t.Run("clock component is ignored", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
		end := time.Date(2024, 6, 2, 0, 1, 0, 0, time.UTC)
		hs := HolidaysBetween(start, end)
		assert.Len(t, hs, 1)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), hs[0])
	})

	t.Run("no holidays in range", func(t *testing.T) {
		start := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, HolidaysBetween(start, end))
	})
}
