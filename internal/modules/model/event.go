package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// ListingEvent is published after a venue, artist or show write commits.
type ListingEvent struct {
	Entity   string            `json:"entity"`
	Kind     EventKind         `json:"kind"`
	EntityID uuid.UUID         `json:"entity_id"`
	Payload  datatypes.JSONMap `json:"payload,omitempty"`
	At       time.Time         `json:"at"`
}
