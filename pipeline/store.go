package pipeline

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripjournal/models"
)

// GormStore persists trip images through GORM. It checks that the owning
// trip exists before writing, so a bad trip id surfaces as ErrTripNotFound
// instead of a foreign key violation.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) SaveImage(ctx context.Context, img *models.TripImage) error {
	var trip models.Trip
	if err := s.db.WithContext(ctx).First(&trip, img.TripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTripNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Create(img).Error
}
