package handler

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartTime(t *testing.T) {
	want := time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "empty", in: "  ", want: time.Time{}},
		{name: "space separated", in: "2026-05-21 21:30:00", want: want},
		{name: "datetime-local", in: "2026-05-21T21:30", want: want},
		{name: "rfc3339 with offset", in: "2026-05-21T23:30:00+02:00", want: want},
		{name: "garbage", in: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStartTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestVenueForm_RoundTrip(t *testing.T) {
	f := &VenueForm{
		Name:          "The Musical Hop",
		City:          "San Francisco",
		State:         "ca",
		Address:       "1015 Folsom Street",
		Genres:        []string{"Jazz", "", " Swing "},
		SeekingTalent: true,
	}
	v, err := f.toModel()
	require.NoError(t, err)

	assert.Equal(t, "CA", v.State)
	assert.Equal(t, model.Genres{"Jazz", "Swing"}, v.Genres)
	assert.True(t, v.SeekingTalent)
	assert.Equal(t, uuid.Nil, v.ID)

	back, err := venueFormFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", back.Name)
	assert.Equal(t, []string{"Jazz", "Swing"}, back.Genres)
	assert.True(t, back.SeekingTalent)
}

func TestArtistForm_ToModel(t *testing.T) {
	f := &ArtistForm{Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: []string{"Rock n Roll"}, SeekingVenue: true}
	a, err := f.toModel()
	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", a.Name)
	assert.True(t, a.SeekingVenue)
	assert.Equal(t, model.Genres{"Rock n Roll"}, a.Genres)
}

func TestShowForm_ToModel(t *testing.T) {
	venueID := uuid.New()
	artistID := uuid.New()

	sh, err := (&ShowForm{VenueID: venueID.String(), ArtistID: artistID.String(), StartTime: "2026-05-21 21:30:00"}).toModel()
	require.NoError(t, err)
	assert.Equal(t, venueID, sh.VenueID)
	assert.Equal(t, artistID, sh.ArtistID)

	_, err = (&ShowForm{VenueID: "x", ArtistID: artistID.String()}).toModel()
	assert.ErrorContains(t, err, "venue_id")
}

func TestStateCodes(t *testing.T) {
	codes := StateCodes()
	assert.Len(t, codes, 51)
	assert.Equal(t, "AK", codes[0])
	assert.Contains(t, codes, "DC")
}
