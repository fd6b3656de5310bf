package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Show struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null;index" json:"venue_id"`
	ArtistID  uuid.UUID `gorm:"type:uuid;not null;index" json:"artist_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Show) TableName() string { return "shows" }

func (s *Show) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.StartTime.IsZero() {
		s.StartTime = time.Now().UTC()
	}
	return nil
}

// IsUpcoming reports whether the show starts at or after now.
func (s Show) IsUpcoming(now time.Time) bool {
	return !s.StartTime.Before(now)
}
