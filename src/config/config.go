package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// Both form validation and booking commit must parse with these same
// constants so a value that validated once can never fail to re-parse.
const DATE_PARSE_FORMAT = "2006/01/02"
const TIME_PARSE_FORMAT = "15:04"

// Booking window relative to "today". Same-day bookings are not accepted.
const BOOKING_MIN_OFFSET_DAYS = 1
const BOOKING_MAX_OFFSET_DAYS = 90

const PAGE_SIZE = 10
