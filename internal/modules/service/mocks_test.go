package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/infra/blob"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/slyt3/fyyur/internal/modules/repo"
	"github.com/stretchr/testify/mock"
)

// MockVenueRepo is a mock implementation of repo.VenueRepo
type MockVenueRepo struct {
	mock.Mock
}

func (m *MockVenueRepo) Create(ctx context.Context, v *model.Venue) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVenueRepo) Update(ctx context.Context, v *model.Venue) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVenueRepo) Delete(ctx context.Context, venueID uuid.UUID) error {
	return m.Called(ctx, venueID).Error(0)
}

func (m *MockVenueRepo) Get(ctx context.Context, venueID uuid.UUID) (*model.Venue, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *MockVenueRepo) List(ctx context.Context) ([]model.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Venue), args.Error(1)
}

func (m *MockVenueRepo) Recent(ctx context.Context, limit int) ([]model.Venue, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Venue), args.Error(1)
}

func (m *MockVenueRepo) CountUpcomingShows(ctx context.Context, now time.Time) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockVenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Venue), args.Error(1)
}

func (m *MockVenueRepo) SearchByArtistName(ctx context.Context, term string) ([]model.Venue, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Venue), args.Error(1)
}

func (m *MockVenueRepo) ListShows(ctx context.Context, venueID uuid.UUID) ([]repo.ShowRow, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.ShowRow), args.Error(1)
}

// MockArtistRepo is a mock implementation of repo.ArtistRepo
type MockArtistRepo struct {
	mock.Mock
}

func (m *MockArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockArtistRepo) Delete(ctx context.Context, artistID uuid.UUID) error {
	return m.Called(ctx, artistID).Error(0)
}

func (m *MockArtistRepo) Get(ctx context.Context, artistID uuid.UUID) (*model.Artist, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *MockArtistRepo) List(ctx context.Context) ([]model.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Artist), args.Error(1)
}

func (m *MockArtistRepo) Recent(ctx context.Context, limit int) ([]model.Artist, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Artist), args.Error(1)
}

func (m *MockArtistRepo) CountUpcomingShows(ctx context.Context, now time.Time) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Artist), args.Error(1)
}

func (m *MockArtistRepo) ListShows(ctx context.Context, artistID uuid.UUID) ([]repo.ShowRow, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.ShowRow), args.Error(1)
}

// MockShowRepo is a mock implementation of repo.ShowRepo
type MockShowRepo struct {
	mock.Mock
}

func (m *MockShowRepo) Create(ctx context.Context, s *model.Show) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShowRepo) Delete(ctx context.Context, showID uuid.UUID) error {
	return m.Called(ctx, showID).Error(0)
}

func (m *MockShowRepo) Get(ctx context.Context, showID uuid.UUID) (*repo.ShowRow, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.ShowRow), args.Error(1)
}

func (m *MockShowRepo) List(ctx context.Context) ([]repo.ShowRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.ShowRow), args.Error(1)
}

func (m *MockShowRepo) Search(ctx context.Context, term string) ([]repo.ShowRow, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repo.ShowRow), args.Error(1)
}

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, v any) error {
	return m.Called(ctx, v).Error(0)
}

// MockImageStore is a mock implementation of ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) UploadImage(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*blob.UploadedMeta, error) {
	args := m.Called(ctx, keyPrefix, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.UploadedMeta), args.Error(1)
}

func (m *MockImageStore) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

// fixedNow is the instant every service under test classifies shows against.
var fixedNow = time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
