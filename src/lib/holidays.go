package lib

import (
	"time"

	holiday_jp "github.com/holiday-jp/holiday_jp-go"
)

// HolidayChecker reports whether a calendar date is a public holiday.
type HolidayChecker func(t time.Time) bool

var isHoliday HolidayChecker = holiday_jp.IsHoliday

// NewHolidayChecker Replace the holiday calendar with a custom implementation
func NewHolidayChecker(c HolidayChecker) {
	isHoliday = c
}

// HolidaysBetween returns every public holiday in [start, end] inclusive.
func HolidaysBetween(start, end time.Time) []time.Time {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	var holidays []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isHoliday(d) {
			holidays = append(holidays, d)
		}
	}
	return holidays
}
