package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artist struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string    `gorm:"type:varchar(120);not null;index" json:"name"`
	City               string    `gorm:"type:varchar(120);not null" json:"city"`
	State              string    `gorm:"type:varchar(120);not null" json:"state"`
	Phone              string    `gorm:"type:varchar(120);not null" json:"phone"`
	Genres             Genres    `gorm:"type:varchar(500);not null;default:''" json:"genres"`
	ImageLink          string    `gorm:"type:varchar(500)" json:"image_link"`
	FacebookLink       string    `gorm:"type:varchar(120)" json:"facebook_link"`
	Website            string    `gorm:"type:varchar(120)" json:"website"`
	SeekingVenue       bool      `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string    `gorm:"type:text;not null;default:''" json:"seeking_description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Artist <-> Show
	Shows []Show `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Artist) TableName() string { return "artists" }

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
