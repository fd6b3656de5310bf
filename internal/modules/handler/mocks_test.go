package handler

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/slyt3/fyyur/internal/modules/service"
	"github.com/slyt3/fyyur/internal/web"
	"github.com/stretchr/testify/mock"
)

// MockVenueService is a mock implementation of service.VenueService
type MockVenueService struct {
	mock.Mock
}

func (m *MockVenueService) Create(ctx context.Context, v *model.Venue) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVenueService) Update(ctx context.Context, v *model.Venue) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVenueService) Delete(ctx context.Context, venueID uuid.UUID) error {
	return m.Called(ctx, venueID).Error(0)
}

func (m *MockVenueService) GetByID(ctx context.Context, venueID uuid.UUID) (*model.Venue, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *MockVenueService) Detail(ctx context.Context, venueID uuid.UUID) (*service.VenueDetail, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VenueDetail), args.Error(1)
}

func (m *MockVenueService) ListByArea(ctx context.Context) ([]service.VenueArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.VenueArea), args.Error(1)
}

func (m *MockVenueService) Search(ctx context.Context, term string) (*service.SearchResult, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}

func (m *MockVenueService) Recent(ctx context.Context, limit int) ([]model.Venue, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Venue), args.Error(1)
}

// MockArtistService is a mock implementation of service.ArtistService
type MockArtistService struct {
	mock.Mock
}

func (m *MockArtistService) Create(ctx context.Context, a *model.Artist) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockArtistService) Update(ctx context.Context, a *model.Artist) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockArtistService) Delete(ctx context.Context, artistID uuid.UUID) error {
	return m.Called(ctx, artistID).Error(0)
}

func (m *MockArtistService) GetByID(ctx context.Context, artistID uuid.UUID) (*model.Artist, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artist), args.Error(1)
}

func (m *MockArtistService) Detail(ctx context.Context, artistID uuid.UUID) (*service.ArtistDetail, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArtistDetail), args.Error(1)
}

func (m *MockArtistService) List(ctx context.Context) ([]service.ArtistSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ArtistSummary), args.Error(1)
}

func (m *MockArtistService) Search(ctx context.Context, term string) (*service.SearchResult, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}

func (m *MockArtistService) Recent(ctx context.Context, limit int) ([]model.Artist, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Artist), args.Error(1)
}

// MockShowService is a mock implementation of service.ShowService
type MockShowService struct {
	mock.Mock
}

func (m *MockShowService) Create(ctx context.Context, sh *model.Show) error {
	return m.Called(ctx, sh).Error(0)
}

func (m *MockShowService) Delete(ctx context.Context, showID uuid.UUID) error {
	return m.Called(ctx, showID).Error(0)
}

func (m *MockShowService) GetByID(ctx context.Context, showID uuid.UUID) (*service.ShowView, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ShowView), args.Error(1)
}

func (m *MockShowService) List(ctx context.Context) ([]service.ShowView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ShowView), args.Error(1)
}

func (m *MockShowService) Search(ctx context.Context, term string) ([]service.ShowView, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ShowView), args.Error(1)
}

// MockMediaService is a mock implementation of service.MediaService
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockMediaService) Upload(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, fh)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) URL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	return r
}

// emptyHome makes the home page render with no recent records.
func emptyHome(v *MockVenueService, a *MockArtistService) {
	v.On("Recent", mock.Anything, recentLimit).Return([]model.Venue{}, nil)
	a.On("Recent", mock.Anything, recentLimit).Return([]model.Artist{}, nil)
}
