package models

import (
	"gorm.io/gorm"
)

// MaxImageTags is the number of tag slots persisted per image.
const MaxImageTags = 5

// TripImage is one photo attached to a trip. The row is only created after
// the binary has been classified and uploaded; it carries the resulting
// storage URL and up to five tags. Unused tag slots stay NULL.
type TripImage struct {
	gorm.Model
	TripID  uint   `json:"trip_id" gorm:"not null;index"`
	FileURL string `json:"file_url" gorm:"not null"`
	Caption string `json:"caption" gorm:"not null"`

	Tag1 *string `json:"tag1,omitempty"`
	Tag2 *string `json:"tag2,omitempty"`
	Tag3 *string `json:"tag3,omitempty"`
	Tag4 *string `json:"tag4,omitempty"`
	Tag5 *string `json:"tag5,omitempty"`

	// Relationship
	Trip Trip `json:"-" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

// SetTags fills the tag slots left to right from tags, clearing the rest.
// Anything past the fifth entry is dropped.
func (img *TripImage) SetTags(tags []string) {
	slots := [MaxImageTags]**string{&img.Tag1, &img.Tag2, &img.Tag3, &img.Tag4, &img.Tag5}
	for i, slot := range slots {
		if i < len(tags) {
			tag := tags[i]
			*slot = &tag
		} else {
			*slot = nil
		}
	}
}

// Tags returns the populated tag slots in order.
func (img *TripImage) Tags() []string {
	var tags []string
	for _, slot := range []*string{img.Tag1, img.Tag2, img.Tag3, img.Tag4, img.Tag5} {
		if slot != nil {
			tags = append(tags, *slot)
		}
	}
	return tags
}
