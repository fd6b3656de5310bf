package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/slyt3/fyyur/internal/modules/repo"
	"go.uber.org/zap"
)

type ShowService interface {
	Create(ctx context.Context, sh *model.Show) error
	Delete(ctx context.Context, showID uuid.UUID) error
	GetByID(ctx context.Context, showID uuid.UUID) (*ShowView, error)
	List(ctx context.Context) ([]ShowView, error)
	Search(ctx context.Context, term string) ([]ShowView, error)
}

// ShowView is a joined show row tagged with its classification at query time.
type ShowView struct {
	repo.ShowRow
	Upcoming bool `json:"upcoming"`
}

type showService struct {
	events
	r repo.ShowRepo
}

func NewShowService(r repo.ShowRepo, log *zap.Logger, pub EventPublisher) ShowService {
	return &showService{events: newEvents(pub, log), r: r}
}

func (s *showService) Create(ctx context.Context, sh *model.Show) error {
	if sh.VenueID == uuid.Nil || sh.ArtistID == uuid.Nil {
		return ErrEmptyID
	}
	if err := s.r.Create(ctx, sh); err != nil {
		return notFound(err)
	}
	s.emit(ctx, "show", model.EventCreated, sh.ID, map[string]interface{}{
		"venue_id":   sh.VenueID.String(),
		"artist_id":  sh.ArtistID.String(),
		"start_time": sh.StartTime,
	})
	return nil
}

func (s *showService) Delete(ctx context.Context, showID uuid.UUID) error {
	if showID == uuid.Nil {
		return ErrEmptyID
	}
	if err := s.r.Delete(ctx, showID); err != nil {
		return notFound(err)
	}
	s.emit(ctx, "show", model.EventDeleted, showID, nil)
	return nil
}

func (s *showService) GetByID(ctx context.Context, showID uuid.UUID) (*ShowView, error) {
	if showID == uuid.Nil {
		return nil, ErrEmptyID
	}
	row, err := s.r.Get(ctx, showID)
	if err != nil {
		return nil, notFound(err)
	}
	v := s.view(*row)
	return &v, nil
}

func (s *showService) List(ctx context.Context) ([]ShowView, error) {
	rows, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(rows), nil
}

func (s *showService) Search(ctx context.Context, term string) ([]ShowView, error) {
	rows, err := s.r.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return s.views(rows), nil
}

func (s *showService) view(r repo.ShowRow) ShowView {
	return ShowView{ShowRow: r, Upcoming: (model.Show{StartTime: r.StartTime}).IsUpcoming(s.now())}
}

func (s *showService) views(rows []repo.ShowRow) []ShowView {
	out := make([]ShowView, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.view(r))
	}
	return out
}

// MissingOwner reports which side of a show could not be found, or "".
func MissingOwner(err error) string {
	switch {
	case errors.Is(err, repo.ErrVenueMissing):
		return "venue"
	case errors.Is(err, repo.ErrArtistMissing):
		return "artist"
	}
	return ""
}
