package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/slyt3/fyyur/internal/modules/model"
)

// VenueForm is the create / edit payload for a venue.
type VenueForm struct {
	Name               string   `form:"name" json:"name" binding:"required,max=120" example:"The Musical Hop"`
	City               string   `form:"city" json:"city" binding:"required,max=120" example:"San Francisco"`
	State              string   `form:"state" json:"state" binding:"required,statecode" example:"CA"`
	Address            string   `form:"address" json:"address" binding:"required,max=120" example:"1015 Folsom Street"`
	Phone              string   `form:"phone" json:"phone" binding:"required,phone" example:"123-123-1234"`
	Genres             []string `form:"genres" json:"genres" binding:"max=20,dive,max=60,excludesall=0x2C" example:"Jazz,Reggae"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url,max=120"`
	Website            string   `form:"website" json:"website" binding:"omitempty,url,max=120"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" binding:"max=2000"`
}

func (f *VenueForm) toModel() (*model.Venue, error) {
	v := &model.Venue{}
	if err := copier.Copy(v, f); err != nil {
		return nil, err
	}
	v.State = strings.ToUpper(f.State)
	v.Genres = model.NewGenres(f.Genres...)
	return v, nil
}

func venueFormFrom(v *model.Venue) (*VenueForm, error) {
	f := &VenueForm{}
	if err := copier.Copy(f, v); err != nil {
		return nil, err
	}
	f.Genres = []string(v.Genres)
	return f, nil
}

// ArtistForm is the create / edit payload for an artist.
type ArtistForm struct {
	Name               string   `form:"name" json:"name" binding:"required,max=120" example:"Guns N Petals"`
	City               string   `form:"city" json:"city" binding:"required,max=120" example:"San Francisco"`
	State              string   `form:"state" json:"state" binding:"required,statecode" example:"CA"`
	Phone              string   `form:"phone" json:"phone" binding:"required,phone" example:"326-123-5000"`
	Genres             []string `form:"genres" json:"genres" binding:"max=20,dive,max=60,excludesall=0x2C" example:"Rock n Roll"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url,max=120"`
	Website            string   `form:"website" json:"website" binding:"omitempty,url,max=120"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" binding:"max=2000"`
}

func (f *ArtistForm) toModel() (*model.Artist, error) {
	a := &model.Artist{}
	if err := copier.Copy(a, f); err != nil {
		return nil, err
	}
	a.State = strings.ToUpper(f.State)
	a.Genres = model.NewGenres(f.Genres...)
	return a, nil
}

func artistFormFrom(a *model.Artist) (*ArtistForm, error) {
	f := &ArtistForm{}
	if err := copier.Copy(f, a); err != nil {
		return nil, err
	}
	f.Genres = []string(a.Genres)
	return f, nil
}

// ShowForm is the create payload for a show. An empty start_time means now.
type ShowForm struct {
	VenueID   string `form:"venue_id" json:"venue_id" binding:"required,uuid" example:"6f1c1d0e-3a7c-4a53-9d1e-2f7a0b3c9d11"`
	ArtistID  string `form:"artist_id" json:"artist_id" binding:"required,uuid" example:"0b8e9c4a-52f1-4c3e-8a55-1d2f3e4a5b6c"`
	StartTime string `form:"start_time" json:"start_time" example:"2026-05-21 21:30:00"`
}

var startTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04", "2006-01-02 15:04"}

func (f *ShowForm) toModel() (*model.Show, error) {
	venueID, err := uuid.Parse(f.VenueID)
	if err != nil {
		return nil, fmt.Errorf("venue_id: %w", err)
	}
	artistID, err := uuid.Parse(f.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("artist_id: %w", err)
	}
	start, err := parseStartTime(f.StartTime)
	if err != nil {
		return nil, err
	}
	return &model.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}, nil
}

// parseStartTime reads local wall-clock layouts as UTC; the zero time lets
// the model default it to the creation instant.
func parseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("start_time: unrecognised format %q", s)
}

type SearchForm struct {
	SearchTerm string `form:"search_term" json:"search_term" binding:"max=200"`
}
