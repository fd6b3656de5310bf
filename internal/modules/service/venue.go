package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/slyt3/fyyur/internal/modules/repo"
	"go.uber.org/zap"
)

type VenueService interface {
	Create(ctx context.Context, v *model.Venue) error
	Update(ctx context.Context, v *model.Venue) error
	Delete(ctx context.Context, venueID uuid.UUID) error
	GetByID(ctx context.Context, venueID uuid.UUID) (*model.Venue, error)
	Detail(ctx context.Context, venueID uuid.UUID) (*VenueDetail, error)
	ListByArea(ctx context.Context) ([]VenueArea, error)
	Search(ctx context.Context, term string) (*SearchResult, error)
	Recent(ctx context.Context, limit int) ([]model.Venue, error)
}

type VenueSummary struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	NumUpcomingShows int64     `json:"num_upcoming_shows"`
}

type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueShow is a show seen from its venue's page.
type VenueShow struct {
	ShowID          uuid.UUID `json:"show_id"`
	ArtistID        uuid.UUID `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type VenueDetail struct {
	model.Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type venueService struct {
	events
	r repo.VenueRepo
}

func NewVenueService(r repo.VenueRepo, log *zap.Logger, pub EventPublisher) VenueService {
	return &venueService{events: newEvents(pub, log), r: r}
}

func (s *venueService) Create(ctx context.Context, v *model.Venue) error {
	if err := s.r.Create(ctx, v); err != nil {
		return err
	}
	s.emit(ctx, "venue", model.EventCreated, v.ID, map[string]interface{}{"name": v.Name})
	return nil
}

func (s *venueService) Update(ctx context.Context, v *model.Venue) error {
	if v.ID == uuid.Nil {
		return ErrEmptyID
	}
	if err := s.r.Update(ctx, v); err != nil {
		return notFound(err)
	}
	s.emit(ctx, "venue", model.EventUpdated, v.ID, map[string]interface{}{"name": v.Name})
	return nil
}

func (s *venueService) Delete(ctx context.Context, venueID uuid.UUID) error {
	if venueID == uuid.Nil {
		return ErrEmptyID
	}
	if err := s.r.Delete(ctx, venueID); err != nil {
		return notFound(err)
	}
	s.emit(ctx, "venue", model.EventDeleted, venueID, nil)
	return nil
}

func (s *venueService) GetByID(ctx context.Context, venueID uuid.UUID) (*model.Venue, error) {
	if venueID == uuid.Nil {
		return nil, ErrEmptyID
	}
	v, err := s.r.Get(ctx, venueID)
	if err != nil {
		return nil, notFound(err)
	}
	return v, nil
}

func (s *venueService) Detail(ctx context.Context, venueID uuid.UUID) (*VenueDetail, error) {
	v, err := s.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	rows, err := s.r.ListShows(ctx, venueID)
	if err != nil {
		return nil, err
	}

	past, upcoming := partitionShows(rows, s.now())
	out := &VenueDetail{
		Venue:              *v,
		PastShows:          toVenueShows(past),
		UpcomingShows:      toVenueShows(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return out, nil
}

func toVenueShows(rows []repo.ShowRow) []VenueShow {
	out := make([]VenueShow, 0, len(rows))
	for _, r := range rows {
		out = append(out, VenueShow{
			ShowID:          r.ID,
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink,
			StartTime:       r.StartTime,
		})
	}
	return out
}

// ListByArea groups venues by (city, state), keeping the repository order
// for both the areas and the venues inside each area.
func (s *venueService) ListByArea(ctx context.Context) ([]VenueArea, error) {
	venues, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.r.CountUpcomingShows(ctx, s.now())
	if err != nil {
		return nil, err
	}

	type areaKey struct{ city, state string }
	idx := make(map[areaKey]int)
	areas := make([]VenueArea, 0)
	for _, v := range venues {
		k := areaKey{v.City, v.State}
		i, ok := idx[k]
		if !ok {
			i = len(areas)
			idx[k] = i
			areas = append(areas, VenueArea{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return areas, nil
}

// Search matches venue names and the names of artists playing at a venue.
func (s *venueService) Search(ctx context.Context, term string) (*SearchResult, error) {
	byName, err := s.r.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	byArtist, err := s.r.SearchByArtistName(ctx, term)
	if err != nil {
		return nil, err
	}
	counts, err := s.r.CountUpcomingShows(ctx, s.now())
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(byName)+len(byArtist))
	hits := make([]SearchHit, 0, len(byName)+len(byArtist))
	for _, group := range [][]model.Venue{byName, byArtist} {
		for _, v := range group {
			if _, dup := seen[v.ID]; dup {
				continue
			}
			seen[v.ID] = struct{}{}
			hits = append(hits, SearchHit{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
		}
	}

	return &SearchResult{
		Count:    len(hits),
		RawCount: len(byName) + len(byArtist),
		Data:     hits,
	}, nil
}

func (s *venueService) Recent(ctx context.Context, limit int) ([]model.Venue, error) {
	return s.r.Recent(ctx, limit)
}
