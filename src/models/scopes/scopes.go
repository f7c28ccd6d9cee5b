package scopes

import (
	"time"

	"webcafe/src/config"

	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at desc")
}

// ByVisitNewestFirst orders bookings for display: latest visit on top.
func ByVisitNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date desc").Order("time desc")
}

// DateBetween filters on the booking date, inclusive on both ends.
// A nil start leaves the lower bound open (past bookings).
func DateBetween(start, end *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start == nil {
			return db.Where("date <= ?", *end)
		}
		return db.Where("date BETWEEN ? AND ?", *start, *end)
	}
}

func Paginate(page int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * config.PAGE_SIZE).Limit(config.PAGE_SIZE)
	}
}
