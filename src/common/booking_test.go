package common

import (
	"testing"
	"time"

	"webcafe/src/config"
	"webcafe/src/lib"

	holiday_jp "github.com/holiday-jp/holiday_jp-go"
	"github.com/stretchr/testify/assert"
)

func TestValidTimeSlots(t *testing.T) {
	slots := ValidTimeSlots()

	assert.Len(t, slots, 24)
	assert.Equal(t, "09:30", slots[0])
	assert.Equal(t, "21:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "09:00")
	assert.NotContains(t, slots, "21:30")

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestIsValidTimeSlot(t *testing.T) {
	assert.True(t, IsValidTimeSlot("10:00"))
	assert.True(t, IsValidTimeSlot("09:30"))
	assert.True(t, IsValidTimeSlot("21:00"))
	assert.False(t, IsValidTimeSlot("09:00"))
	assert.False(t, IsValidTimeSlot("21:30"))
	assert.False(t, IsValidTimeSlot("10:15"))
	assert.False(t, IsValidTimeSlot(""))
}

func TestDateFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"2025/03/01", "2024/12/31", "2024/02/29", "2025/01/05"} {
		parsed, err := time.Parse(config.DATE_PARSE_FORMAT, s)
		assert.Nil(t, err)
		assert.Equal(t, s, parsed.Format(config.DATE_PARSE_FORMAT))
	}
}

func TestComputeAvailability(t *testing.T) {
	// Fixed holiday calendar so the test does not depend on locale data.
	lib.NewHolidayChecker(func(d time.Time) bool {
		return d.Month() == time.January && d.Day() == 1
	})
	defer lib.NewHolidayChecker(holiday_jp.IsHoliday)

	today := time.Date(2024, 12, 15, 13, 45, 0, 0, time.UTC)
	a := ComputeAvailability(today)

	assert.Equal(t, "2024/12/16", a.MinDate)
	assert.Equal(t, "2025/03/15", a.MaxDate)
	assert.Len(t, a.TimeSlots, 24)
	assert.Equal(t, []string{"2025/01/01"}, a.Holidays)
}

func TestPeriodRange(t *testing.T) {
	today := time.Date(2024, 12, 15, 10, 0, 0, 0, time.UTC)
	midnight := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)

	t.Run("today", func(t *testing.T) {
		start, end := PeriodRange("today", today)
		assert.Equal(t, midnight, *start)
		assert.Equal(t, midnight, *end)
	})

	t.Run("tomorrow", func(t *testing.T) {
		start, end := PeriodRange("tomorrow", today)
		assert.Equal(t, midnight.AddDate(0, 0, 1), *start)
		assert.Equal(t, midnight.AddDate(0, 0, 1), *end)
	})

	t.Run("this_week ends next Sunday inclusive", func(t *testing.T) {
		// 2024-12-15 is a Sunday, so the week ends the same day.
		start, end := PeriodRange("this_week", today)
		assert.Equal(t, midnight, *start)
		assert.Equal(t, midnight, *end)

		// A Wednesday runs through the following Sunday.
		wednesday := time.Date(2024, 12, 11, 9, 0, 0, 0, time.UTC)
		start, end = PeriodRange("this_week", wednesday)
		assert.Equal(t, time.Date(2024, 12, 11, 0, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("this_month", func(t *testing.T) {
		start, end := PeriodRange("this_month", today)
		assert.Equal(t, midnight, *start)
		assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("next_month rolls over the year", func(t *testing.T) {
		start, end := PeriodRange("next_month", today)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), *end)

		start, end = PeriodRange("next_month", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("past_booking is open below", func(t *testing.T) {
		start, end := PeriodRange("past_booking", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
		assert.Nil(t, start)
		assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("unknown token falls back to today", func(t *testing.T) {
		start, end := PeriodRange("sometime", today)
		assert.Equal(t, midnight, *start)
		assert.Equal(t, midnight, *end)

		start, end = PeriodRange("", today)
		assert.Equal(t, midnight, *start)
		assert.Equal(t, midnight, *end)
	})
}
