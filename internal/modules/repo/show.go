package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrVenueMissing  = errors.New("venue does not exist")
	ErrArtistMissing = errors.New("artist does not exist")
)

type ShowRepo interface {
	Create(ctx context.Context, s *model.Show) error
	Delete(ctx context.Context, showID uuid.UUID) error
	Get(ctx context.Context, showID uuid.UUID) (*ShowRow, error)
	List(ctx context.Context) ([]ShowRow, error)
	Search(ctx context.Context, term string) ([]ShowRow, error)
}

type showRepo struct{ db *gorm.DB }

func NewShowRepo(db *gorm.DB) ShowRepo {
	return &showRepo{db: db}
}

// Create checks both owners inside the insert transaction; a missing owner
// is reported as gorm.ErrRecordNotFound wrapped with which side is absent.
func (r *showRepo) Create(ctx context.Context, s *model.Show) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Venue{}).Where("id = ?", s.VenueID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %w", ErrVenueMissing, gorm.ErrRecordNotFound)
		}
		if err := tx.Model(&model.Artist{}).Where("id = ?", s.ArtistID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %w", ErrArtistMissing, gorm.ErrRecordNotFound)
		}
		return tx.Omit(clause.Associations).Create(s).Error
	})
}

func (r *showRepo) Delete(ctx context.Context, showID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", showID).Delete(&model.Show{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *showRepo) Get(ctx context.Context, showID uuid.UUID) (*ShowRow, error) {
	var rows []ShowRow
	if err := showRows(r.db.WithContext(ctx)).Where("shows.id = ?", showID).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *showRepo) List(ctx context.Context) ([]ShowRow, error) {
	var rows []ShowRow
	return rows, showRows(r.db.WithContext(ctx)).Order("shows.start_time ASC").Scan(&rows).Error
}

func (r *showRepo) Search(ctx context.Context, term string) ([]ShowRow, error) {
	p := containsPattern(term)
	var rows []ShowRow
	return rows, showRows(r.db.WithContext(ctx)).
		Where(r.db.Where(ilike("venues.name"), p).Or(ilike("artists.name"), p)).
		Order("shows.start_time ASC").
		Scan(&rows).Error
}
