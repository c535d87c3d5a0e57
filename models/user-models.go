package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	FullName string `json:"name"`
	Password string `json:"-" gorm:"not null"`

	// Relationship: deleting a user removes their trips (and, transitively,
	// every image attached to those trips).
	Trips []Trip `json:"trips,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
