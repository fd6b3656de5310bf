package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/slyt3/fyyur/internal/modules/repo"
	"github.com/slyt3/fyyur/internal/modules/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type showDeps struct {
	shows   *MockShowService
	venues  *MockVenueService
	artists *MockArtistService
}

func setupShowRouter() (*gin.Engine, showDeps) {
	d := showDeps{shows: &MockShowService{}, venues: &MockVenueService{}, artists: &MockArtistService{}}
	home := NewHomeHandler(d.venues, d.artists, &MockMediaService{})
	h := NewShowHandler(d.shows, d.venues, d.artists, home)

	r := setupRouter()
	r.GET("/shows", h.ListShows)
	r.POST("/shows/search", h.SearchShows)
	r.GET("/shows/create", h.NewShowForm)
	r.POST("/shows/create", h.CreateShow)
	r.GET("/shows/:id", h.GetShow)
	r.DELETE("/shows/:id", h.DeleteShow)
	return r, d
}

func TestShowHandler_CreateShow(t *testing.T) {
	venueID := uuid.New()
	artistID := uuid.New()

	tests := []struct {
		name           string
		body           map[string]any
		setup          func(*MockShowService)
		expectedStatus int
	}{
		{
			name: "created",
			body: map[string]any{"venue_id": venueID.String(), "artist_id": artistID.String(), "start_time": "2026-05-21 21:30:00"},
			setup: func(svc *MockShowService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Show) bool {
					return s.VenueID == venueID && s.ArtistID == artistID &&
						s.StartTime.Equal(time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC))
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "empty start time is left for the model default",
			body: map[string]any{"venue_id": venueID.String(), "artist_id": artistID.String()},
			setup: func(svc *MockShowService) {
				svc.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Show) bool {
					return s.StartTime.IsZero()
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed venue id",
			body:           map[string]any{"venue_id": "7", "artist_id": artistID.String()},
			setup:          func(*MockShowService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unreadable start time",
			body:           map[string]any{"venue_id": venueID.String(), "artist_id": artistID.String(), "start_time": "next friday"},
			setup:          func(*MockShowService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "venue does not exist",
			body: map[string]any{"venue_id": venueID.String(), "artist_id": artistID.String()},
			setup: func(svc *MockShowService) {
				err := fmt.Errorf("%w: %w", service.ErrNotFound, fmt.Errorf("%w: %w", repo.ErrVenueMissing, gorm.ErrRecordNotFound))
				svc.On("Create", mock.Anything, mock.Anything).Return(err)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "persistence failure",
			body: map[string]any{"venue_id": venueID.String(), "artist_id": artistID.String()},
			setup: func(svc *MockShowService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(errors.New("deadlock"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, d := setupShowRouter()
			tt.setup(d.shows)

			body, _ := sonic.Marshal(tt.body)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, jsonRequest(http.MethodPost, "/shows/create", body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			d.shows.AssertExpectations(t)
		})
	}
}

func TestShowHandler_CreateShow_HTML(t *testing.T) {
	r, d := setupShowRouter()
	d.shows.On("Create", mock.Anything, mock.Anything).Return(nil)
	emptyHome(d.venues, d.artists)

	form := url.Values{"venue_id": {uuid.NewString()}, "artist_id": {uuid.NewString()}, "start_time": {"2026-06-15T20:00"}}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/shows/create", form))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Show was successfully listed!")
}

func TestShowHandler_NewShowForm_HTMLListsOptions(t *testing.T) {
	r, d := setupShowRouter()
	d.venues.On("ListByArea", mock.Anything).Return([]service.VenueArea{
		{City: "New York", State: "NY", Venues: []service.VenueSummary{{ID: uuid.New(), Name: "The Dueling Pianos Bar"}}},
	}, nil)
	d.artists.On("List", mock.Anything).Return([]service.ArtistSummary{{ID: uuid.New(), Name: "Matt Quevedo"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shows/create", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The Dueling Pianos Bar")
	assert.Contains(t, w.Body.String(), "Matt Quevedo")
}

func TestShowHandler_GetShow(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		r, d := setupShowRouter()
		d.shows.On("GetByID", mock.Anything, id).Return(&service.ShowView{
			ShowRow:  repo.ShowRow{ID: id, VenueName: "The Musical Hop", ArtistName: "Guns N Petals"},
			Upcoming: true,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodGet, "/shows/"+id.String(), nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"venue_name":"The Musical Hop"`)
		assert.Contains(t, w.Body.String(), `"upcoming":true`)
	})

	t.Run("missing redirects to listing", func(t *testing.T) {
		r, d := setupShowRouter()
		d.shows.On("GetByID", mock.Anything, id).Return(nil, service.ErrNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shows/"+id.String(), nil))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/shows", w.Header().Get("Location"))
	})
}

func TestShowHandler_SearchShows(t *testing.T) {
	r, d := setupShowRouter()
	d.shows.On("Search", mock.Anything, "petals").Return([]service.ShowView{
		{ShowRow: repo.ShowRow{ID: uuid.New(), ArtistName: "Guns N Petals"}},
		{ShowRow: repo.ShowRow{ID: uuid.New(), ArtistName: "Guns N Petals"}},
	}, nil)

	req := formRequest(http.MethodPost, "/shows/search", url.Values{"search_term": {"petals"}})
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestShowHandler_DeleteShow(t *testing.T) {
	id := uuid.New()
	r, d := setupShowRouter()
	d.shows.On("Delete", mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodDelete, "/shows/"+id.String(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Show was successfully deleted!", decode(t, w).Msg)
}
