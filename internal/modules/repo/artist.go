package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepo interface {
	Create(ctx context.Context, a *model.Artist) error
	Update(ctx context.Context, a *model.Artist) error
	Delete(ctx context.Context, artistID uuid.UUID) error
	Get(ctx context.Context, artistID uuid.UUID) (*model.Artist, error)
	List(ctx context.Context) ([]model.Artist, error)
	Recent(ctx context.Context, limit int) ([]model.Artist, error)
	CountUpcomingShows(ctx context.Context, now time.Time) (map[uuid.UUID]int64, error)
	SearchByName(ctx context.Context, term string) ([]model.Artist, error)
	ListShows(ctx context.Context, artistID uuid.UUID) ([]ShowRow, error)
}

type artistRepo struct{ db *gorm.DB }

func NewArtistRepo(db *gorm.DB) ArtistRepo {
	return &artistRepo{db: db}
}

func (r *artistRepo) Create(ctx context.Context, a *model.Artist) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(a).Error
	})
}

func (r *artistRepo) Update(ctx context.Context, a *model.Artist) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(a).Select("*").Omit("id", "created_at", clause.Associations).Updates(a)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *artistRepo) Delete(ctx context.Context, artistID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", artistID).Delete(&model.Show{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", artistID).Delete(&model.Artist{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *artistRepo) Get(ctx context.Context, artistID uuid.UUID) (*model.Artist, error) {
	var a model.Artist
	if err := r.db.WithContext(ctx).Where("id = ?", artistID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *artistRepo) List(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	return artists, r.db.WithContext(ctx).Order("name ASC").Find(&artists).Error
}

func (r *artistRepo) Recent(ctx context.Context, limit int) ([]model.Artist, error) {
	var artists []model.Artist
	return artists, r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&artists).Error
}

func (r *artistRepo) CountUpcomingShows(ctx context.Context, now time.Time) (map[uuid.UUID]int64, error) {
	type row struct {
		ArtistID uuid.UUID
		N        int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Show{}).
		Select("artist_id, COUNT(*) AS n").
		Where("start_time >= ?", now).
		Group("artist_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]int64, len(rows))
	for _, rw := range rows {
		out[rw.ArtistID] = rw.N
	}
	return out, nil
}

func (r *artistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	var artists []model.Artist
	return artists, r.db.WithContext(ctx).
		Where(ilike("name"), containsPattern(term)).
		Order("name ASC").
		Find(&artists).Error
}

func (r *artistRepo) ListShows(ctx context.Context, artistID uuid.UUID) ([]ShowRow, error) {
	var rows []ShowRow
	return rows, showRows(r.db.WithContext(ctx)).
		Where("shows.artist_id = ?", artistID).
		Order("shows.start_time ASC").
		Scan(&rows).Error
}
