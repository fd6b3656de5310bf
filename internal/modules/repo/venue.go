package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepo interface {
	Create(ctx context.Context, v *model.Venue) error
	Update(ctx context.Context, v *model.Venue) error
	Delete(ctx context.Context, venueID uuid.UUID) error
	Get(ctx context.Context, venueID uuid.UUID) (*model.Venue, error)
	List(ctx context.Context) ([]model.Venue, error)
	Recent(ctx context.Context, limit int) ([]model.Venue, error)
	CountUpcomingShows(ctx context.Context, now time.Time) (map[uuid.UUID]int64, error)
	SearchByName(ctx context.Context, term string) ([]model.Venue, error)
	SearchByArtistName(ctx context.Context, term string) ([]model.Venue, error)
	ListShows(ctx context.Context, venueID uuid.UUID) ([]ShowRow, error)
}

type venueRepo struct{ db *gorm.DB }

func NewVenueRepo(db *gorm.DB) VenueRepo {
	return &venueRepo{db: db}
}

func (r *venueRepo) Create(ctx context.Context, v *model.Venue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(v).Error
	})
}

// Update overwrites every column of the venue except its id and creation time.
func (r *venueRepo) Update(ctx context.Context, v *model.Venue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(v).Select("*").Omit("id", "created_at", clause.Associations).Updates(v)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *venueRepo) Delete(ctx context.Context, venueID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Shows go first so the delete holds even without ON DELETE CASCADE in the schema.
		if err := tx.Where("venue_id = ?", venueID).Delete(&model.Show{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", venueID).Delete(&model.Venue{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *venueRepo) Get(ctx context.Context, venueID uuid.UUID) (*model.Venue, error) {
	var v model.Venue
	if err := r.db.WithContext(ctx).Where("id = ?", venueID).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *venueRepo) List(ctx context.Context) ([]model.Venue, error) {
	var venues []model.Venue
	return venues, r.db.WithContext(ctx).Order("state ASC, city ASC, name ASC").Find(&venues).Error
}

func (r *venueRepo) Recent(ctx context.Context, limit int) ([]model.Venue, error) {
	var venues []model.Venue
	return venues, r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&venues).Error
}

func (r *venueRepo) CountUpcomingShows(ctx context.Context, now time.Time) (map[uuid.UUID]int64, error) {
	type row struct {
		VenueID uuid.UUID
		N       int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Show{}).
		Select("venue_id, COUNT(*) AS n").
		Where("start_time >= ?", now).
		Group("venue_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]int64, len(rows))
	for _, rw := range rows {
		out[rw.VenueID] = rw.N
	}
	return out, nil
}

func (r *venueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	var venues []model.Venue
	return venues, r.db.WithContext(ctx).
		Where(ilike("name"), containsPattern(term)).
		Order("name ASC").
		Find(&venues).Error
}

// SearchByArtistName returns one venue per matching show, so a venue can repeat.
func (r *venueRepo) SearchByArtistName(ctx context.Context, term string) ([]model.Venue, error) {
	var venues []model.Venue
	return venues, r.db.WithContext(ctx).
		Model(&model.Venue{}).
		Select("venues.*").
		Joins("JOIN shows ON shows.venue_id = venues.id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where(ilike("artists.name"), containsPattern(term)).
		Order("venues.name ASC").
		Find(&venues).Error
}

func (r *venueRepo) ListShows(ctx context.Context, venueID uuid.UUID) ([]ShowRow, error) {
	var rows []ShowRow
	return rows, showRows(r.db.WithContext(ctx)).
		Where("shows.venue_id = ?", venueID).
		Order("shows.start_time ASC").
		Scan(&rows).Error
}
