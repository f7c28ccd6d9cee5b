package models

import "webcafe/src/types"

type Menu struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Title string `gorm:"size:50" json:"title"`
	Img   string `json:"img"`
	Alt   string `gorm:"size:50" json:"alt"`
	Price int    `gorm:"check:price >= 0" json:"price"`

	Reviews []Review `gorm:"foreignKey:product_id" json:"reviews,omitempty"`

	types.Timestamps
}
