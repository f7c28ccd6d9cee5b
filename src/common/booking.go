package common

import (
	"fmt"
	"log"
	"os"
	"time"

	"webcafe/src/config"
	"webcafe/src/db"
	"webcafe/src/lib"
	"webcafe/src/models"
	"webcafe/src/types"

	"gorm.io/gorm"
)

// Availability is the booking-form payload: the bookable window, the
// holidays to disable client-side, and the selectable time slots.
type Availability struct {
	MinDate   string   `json:"min_date"`
	MaxDate   string   `json:"max_date"`
	Holidays  []string `json:"holidays"`
	TimeSlots []string `json:"time_slots"`
}

// Business hours. The open and close boundary marks themselves are not
// bookable: the first slot is half an hour after opening, the last one
// half an hour before closing.
const (
	openHour    = 9
	closeHour   = 21
	closeMinute = 30
	slotStep    = 30 * time.Minute
)

// ValidTimeSlots enumerates the bookable half-hour marks, ascending.
// Generated, not hand-listed: adding a slot means changing the rule here.
func ValidTimeSlots() []string {
	day := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	open := day.Add(time.Duration(openHour) * time.Hour)
	close := day.Add(time.Duration(closeHour)*time.Hour + time.Duration(closeMinute)*time.Minute)

	var slots []string
	for t := open.Add(slotStep); t.Before(close); t = t.Add(slotStep) {
		slots = append(slots, t.Format(config.TIME_PARSE_FORMAT))
	}
	return slots
}

func IsValidTimeSlot(value string) bool {
	for _, slot := range ValidTimeSlots() {
		if slot == value {
			return true
		}
	}
	return false
}

// ComputeAvailability is a pure function of "today" and must be recomputed
// per request.
func ComputeAvailability(today time.Time) Availability {
	today = Midnight(today)
	minDate := today.AddDate(0, 0, config.BOOKING_MIN_OFFSET_DAYS)
	maxDate := today.AddDate(0, 0, config.BOOKING_MAX_OFFSET_DAYS)

	holidays := []string{}
	for _, h := range lib.HolidaysBetween(today, maxDate) {
		holidays = append(holidays, h.Format(config.DATE_PARSE_FORMAT))
	}

	return Availability{
		MinDate:   minDate.Format(config.DATE_PARSE_FORMAT),
		MaxDate:   maxDate.Format(config.DATE_PARSE_FORMAT),
		Holidays:  holidays,
		TimeSlots: ValidTimeSlots(),
	}
}

func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PeriodRange maps a listing period token to an inclusive date range.
// A nil start means the lower bound is open. Unknown tokens fall back to
// "today" rather than erroring.
func PeriodRange(period string, today time.Time) (start, end *time.Time) {
	today = Midnight(today)
	switch period {
	case "today":
		return &today, &today
	case "tomorrow":
		tomorrow := today.AddDate(0, 0, 1)
		return &tomorrow, &tomorrow
	case "this_week":
		// Monday-based week, ending Sunday inclusive.
		mon0 := (int(today.Weekday()) + 6) % 7
		sunday := today.AddDate(0, 0, 6-mon0)
		return &today, &sunday
	case "this_month":
		firstOfNext := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, 0)
		lastDay := firstOfNext.AddDate(0, 0, -1)
		return &today, &lastDay
	case "next_month":
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, 1, 0)
		last := first.AddDate(0, 1, -1)
		return &first, &last
	case "past_booking":
		yesterday := today.AddDate(0, 0, -1)
		return nil, &yesterday
	default:
		return &today, &today
	}
}

// CommitDraft converts a validated draft into a persistent Booking. The
// draft's date and time already passed validation with the same format
// constants, so a parse failure here is an internal fault, not user error.
func CommitDraft(draft *types.BookingDraft) (*models.Booking, error) {
	date, err := time.Parse(config.DATE_PARSE_FORMAT, draft.Date)
	if err != nil {
		return nil, fmt.Errorf("draft date %q no longer parses: %w", draft.Date, err)
	}
	if _, err := time.Parse(config.TIME_PARSE_FORMAT, draft.Time); err != nil {
		return nil, fmt.Errorf("draft time %q no longer parses: %w", draft.Time, err)
	}

	booking := models.Booking{
		Name:           draft.Name,
		Date:           date,
		Time:           draft.Time,
		PhoneNumber:    draft.PhoneNumber,
		NumberOfPeople: draft.NumberOfPeople,
	}
	if draft.Email != "" {
		booking.Email = &draft.Email
	}

	d := db.GetDb()
	err = d.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// SendBookingConfirmation mails the draft summary to the guest. The caller
// treats a failure as non-fatal: the booking is committed either way.
func SendBookingConfirmation(draft *types.BookingDraft) error {
	if draft.Email == "" {
		return nil
	}
	from := os.Getenv("MAIL_FROM")
	input := &lib.SendMailInput{
		From:     from,
		FromName: "WebCafe",
		To:       []string{draft.Email},
		Subject:  "WebCafe booking confirmation",
		Body: fmt.Sprintf(
			"Booked for: %s\n\nVisit date: %s\n\nVisit time: %s\n\nParty size: %d",
			draft.Name, draft.Date, draft.Time, draft.NumberOfPeople,
		),
	}
	if err := lib.SendMail(input); err != nil {
		log.Printf("Error sending booking confirmation to %s: %s\n", draft.Email, err.Error())
		return err
	}
	return nil
}
