package models

import "webcafe/src/types"

type User struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:18" json:"username"`
	PasswordHash string `json:"-"`
	Superuser    bool   `gorm:"default:false" json:"superuser,omitempty"`

	Reviews []Review `gorm:"foreignKey:user_id" json:"reviews,omitempty"`

	types.Timestamps
}
