package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type NewsCategory string

const (
	NEWS_PROMOTION      NewsCategory = "promotion"
	NEWS_IRREGULAR_MENU NewsCategory = "irregularmenu"
	NEWS_EVENT          NewsCategory = "event"
	NEWS_TALK           NewsCategory = "talk"
)

// NewsCategoryNames maps the fixed category vocabulary to display names.
// An unknown key means the category does not exist (404, not fallback).
var NewsCategoryNames = map[NewsCategory]string{
	NEWS_PROMOTION:      "Shop promotion",
	NEWS_IRREGULAR_MENU: "Seasonal menu",
	NEWS_EVENT:          "Event",
	NEWS_TALK:           "Customer talk",
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type SignupRequestBody struct {
	Username        string `json:"username" binding:"required,min=6,max=18,alphanum"`
	Password        string `json:"password" binding:"required,min=8,max=20,letterdigit"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

type LoginRequestBody struct {
	Username string `json:"username" binding:"required,max=18"`
	Password string `json:"password" binding:"required,max=20"`
}

type RenameRequestBody struct {
	Username string `json:"username" binding:"required,min=6,max=18,alphanum"`
}

type CreateNewsRequestBody struct {
	Category string `json:"category" binding:"required,newscategory"`
	Title    string `json:"title" binding:"required,max=100"`
	Text     string `json:"text" binding:"required"`
	Img      string `json:"img" binding:"omitempty,max=200"`
	Alt      string `json:"alt" binding:"omitempty,max=100"`
}

type CreateMenuRequestBody struct {
	Title string `json:"title" binding:"required,max=50"`
	Img   string `json:"img" binding:"required,max=200"`
	Alt   string `json:"alt" binding:"required,max=50"`
	Price int    `json:"price" binding:"min=0"`
}

// CreateBookingRequestBody carries the raw intake fields. Date and Time stay
// strings here: the validated draft is stored as-is in the session and only
// converted to structured values at commit.
type CreateBookingRequestBody struct {
	Name           string `json:"name" binding:"required,max=40"`
	Date           string `json:"date" binding:"required,bookabledate"`
	Time           string `json:"time" binding:"required,timeslot"`
	Email          string `json:"email" binding:"omitempty,email,max=40"`
	PhoneNumber    string `json:"phone_number" binding:"required,max=15"`
	NumberOfPeople uint   `json:"number_of_people" binding:"omitempty,min=1,max=10"`
}

type ContactRequestBody struct {
	Subject  string `json:"subject" binding:"required,max=100"`
	Message  string `json:"message" binding:"required"`
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
}

// BookingDraft is the session-held pending booking between intake and
// confirm. At most one exists per session; it is overwritten by a new
// submission and destroyed on successful commit.
type BookingDraft struct {
	Name           string `json:"name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Email          string `json:"email,omitempty"`
	PhoneNumber    string `json:"phone_number"`
	NumberOfPeople uint   `json:"number_of_people"`
}
