package models

import "webcafe/src/types"

type Review struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id"`
	Rating    uint8  `gorm:"check:rating BETWEEN 1 AND 5" json:"rating"`
	Title     string `gorm:"size:255" json:"title"`
	Content   string `json:"content"`

	User    *User `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Product *Menu `gorm:"foreignKey:product_id" json:"product,omitempty"`

	types.Timestamps
}
