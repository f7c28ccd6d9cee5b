package models

import "webcafe/src/types"

type News struct {
	ID       uint               `gorm:"primarykey" json:"id"`
	Category types.NewsCategory `gorm:"size:100;index" json:"category"`
	Title    string             `gorm:"size:100" json:"title"`
	Text     string             `json:"text"`
	Img      *string            `json:"img,omitempty"`
	Alt      *string            `gorm:"size:100" json:"alt,omitempty"`

	types.Timestamps
}
