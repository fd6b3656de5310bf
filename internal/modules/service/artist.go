package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/slyt3/fyyur/internal/modules/repo"
	"go.uber.org/zap"
)

type ArtistService interface {
	Create(ctx context.Context, a *model.Artist) error
	Update(ctx context.Context, a *model.Artist) error
	Delete(ctx context.Context, artistID uuid.UUID) error
	GetByID(ctx context.Context, artistID uuid.UUID) (*model.Artist, error)
	Detail(ctx context.Context, artistID uuid.UUID) (*ArtistDetail, error)
	List(ctx context.Context) ([]ArtistSummary, error)
	Search(ctx context.Context, term string) (*SearchResult, error)
	Recent(ctx context.Context, limit int) ([]model.Artist, error)
}

type ArtistSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ArtistShow is a show seen from its artist's page.
type ArtistShow struct {
	ShowID         uuid.UUID `json:"show_id"`
	VenueID        uuid.UUID `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type ArtistDetail struct {
	model.Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type artistService struct {
	events
	r repo.ArtistRepo
}

func NewArtistService(r repo.ArtistRepo, log *zap.Logger, pub EventPublisher) ArtistService {
	return &artistService{events: newEvents(pub, log), r: r}
}

func (s *artistService) Create(ctx context.Context, a *model.Artist) error {
	if err := s.r.Create(ctx, a); err != nil {
		return err
	}
	s.emit(ctx, "artist", model.EventCreated, a.ID, map[string]interface{}{"name": a.Name})
	return nil
}

func (s *artistService) Update(ctx context.Context, a *model.Artist) error {
	if a.ID == uuid.Nil {
		return ErrEmptyID
	}
	if err := s.r.Update(ctx, a); err != nil {
		return notFound(err)
	}
	s.emit(ctx, "artist", model.EventUpdated, a.ID, map[string]interface{}{"name": a.Name})
	return nil
}

func (s *artistService) Delete(ctx context.Context, artistID uuid.UUID) error {
	if artistID == uuid.Nil {
		return ErrEmptyID
	}
	if err := s.r.Delete(ctx, artistID); err != nil {
		return notFound(err)
	}
	s.emit(ctx, "artist", model.EventDeleted, artistID, nil)
	return nil
}

func (s *artistService) GetByID(ctx context.Context, artistID uuid.UUID) (*model.Artist, error) {
	if artistID == uuid.Nil {
		return nil, ErrEmptyID
	}
	a, err := s.r.Get(ctx, artistID)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (s *artistService) Detail(ctx context.Context, artistID uuid.UUID) (*ArtistDetail, error) {
	a, err := s.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	rows, err := s.r.ListShows(ctx, artistID)
	if err != nil {
		return nil, err
	}

	past, upcoming := partitionShows(rows, s.now())
	return &ArtistDetail{
		Artist:             *a,
		PastShows:          toArtistShows(past),
		UpcomingShows:      toArtistShows(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func toArtistShows(rows []repo.ShowRow) []ArtistShow {
	out := make([]ArtistShow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ArtistShow{
			ShowID:         r.ID,
			VenueID:        r.VenueID,
			VenueName:      r.VenueName,
			VenueImageLink: r.VenueImageLink,
			StartTime:      r.StartTime,
		})
	}
	return out
}

func (s *artistService) List(ctx context.Context) ([]ArtistSummary, error) {
	artists, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ArtistSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistSummary{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

func (s *artistService) Search(ctx context.Context, term string) (*SearchResult, error) {
	artists, err := s.r.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	counts, err := s.r.CountUpcomingShows(ctx, s.now())
	if err != nil {
		return nil, err
	}

	hits := make([]SearchHit, 0, len(artists))
	for _, a := range artists {
		hits = append(hits, SearchHit{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return &SearchResult{Count: len(hits), RawCount: len(hits), Data: hits}, nil
}

func (s *artistService) Recent(ctx context.Context, limit int) ([]model.Artist, error) {
	return s.r.Recent(ctx, limit)
}
