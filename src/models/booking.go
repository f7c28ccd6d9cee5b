package models

import (
	"time"

	"webcafe/src/types"
)

// Booking is created only through the confirm step and is immutable
// afterwards; there is no edit or cancel flow. Nothing prevents two
// bookings from landing on the same date and time slot.
type Booking struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"size:40" json:"name"`
	Date           time.Time `gorm:"type:date;index:idx_bookings_date_time" json:"date"`
	Time           string    `gorm:"type:time;index:idx_bookings_date_time" json:"time"`
	Email          *string   `gorm:"size:40" json:"email,omitempty"`
	PhoneNumber    string    `gorm:"size:15" json:"phone_number"`
	NumberOfPeople uint      `gorm:"default:1;check:number_of_people BETWEEN 1 AND 10" json:"number_of_people"`

	types.Timestamps
}
