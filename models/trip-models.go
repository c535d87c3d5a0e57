package models

import (
	"gorm.io/gorm"
)

type Trip struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"not null;index"`
	Title  string `json:"title" gorm:"not null"`

	// Relationship
	Images []TripImage `json:"images,omitempty" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}
