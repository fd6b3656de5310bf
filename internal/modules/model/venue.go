package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string    `gorm:"type:varchar(120);not null;index" json:"name"`
	City               string    `gorm:"type:varchar(120);not null;index:idx_venues_area" json:"city"`
	State              string    `gorm:"type:varchar(120);not null;index:idx_venues_area" json:"state"`
	Address            string    `gorm:"type:varchar(120);not null" json:"address"`
	Phone              string    `gorm:"type:varchar(120);not null" json:"phone"`
	Genres             Genres    `gorm:"type:varchar(500);not null;default:''" json:"genres"`
	ImageLink          string    `gorm:"type:varchar(500)" json:"image_link"`
	FacebookLink       string    `gorm:"type:varchar(120)" json:"facebook_link"`
	Website            string    `gorm:"type:varchar(120)" json:"website"`
	SeekingTalent      bool      `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"type:text;not null;default:''" json:"seeking_description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Venue <-> Show
	Shows []Show `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Venue) TableName() string { return "venues" }

func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
