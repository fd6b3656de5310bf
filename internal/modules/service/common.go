package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/slyt3/fyyur/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrEmptyID  = errors.New("id is empty")
)

// EventPublisher receives a ListingEvent after every committed write.
type EventPublisher interface {
	PublishJSON(ctx context.Context, v any) error
}

// notFound folds gorm's sentinel into ErrNotFound and leaves other errors as they are.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

// events is embedded by every service; a nil publisher disables publishing.
type events struct {
	pub EventPublisher
	log *zap.Logger
	now func() time.Time
}

func newEvents(pub EventPublisher, log *zap.Logger) events {
	if log == nil {
		log = zap.NewNop()
	}
	return events{pub: pub, log: log, now: time.Now}
}

// emit runs after commit, so a broker failure is logged rather than returned.
func (e events) emit(ctx context.Context, entity string, kind model.EventKind, id uuid.UUID, payload map[string]interface{}) {
	if e.pub == nil {
		return
	}
	ev := model.ListingEvent{
		Entity:   entity,
		Kind:     kind,
		EntityID: id,
		Payload:  datatypes.JSONMap(payload),
		At:       e.now().UTC(),
	}
	if err := e.pub.PublishJSON(ctx, ev); err != nil {
		e.log.Sugar().Warnw("listing event not published", "entity", entity, "kind", kind, "id", id, "err", err)
	}
}

// partitionShows splits rows into past and upcoming relative to now; a show
// starting exactly at now is upcoming.
func partitionShows(rows []repo.ShowRow, now time.Time) (past, upcoming []repo.ShowRow) {
	past = make([]repo.ShowRow, 0, len(rows))
	upcoming = make([]repo.ShowRow, 0, len(rows))
	for _, r := range rows {
		if (model.Show{StartTime: r.StartTime}).IsUpcoming(now) {
			upcoming = append(upcoming, r)
		} else {
			past = append(past, r)
		}
	}
	return past, upcoming
}

type SearchHit struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	NumUpcomingShows int64     `json:"num_upcoming_shows"`
}

// SearchResult.Count is the length of Data; RawCount is the size of the
// union before duplicate records were dropped.
type SearchResult struct {
	Count    int         `json:"count"`
	RawCount int         `json:"raw_count"`
	Data     []SearchHit `json:"data"`
}
