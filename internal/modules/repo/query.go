package repo

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShowRow is a show joined with the names and images of both owners.
type ShowRow struct {
	ID              uuid.UUID `json:"id"`
	StartTime       time.Time `json:"start_time"`
	VenueID         uuid.UUID `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        uuid.UUID `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
}

const showRowColumns = `shows.id, shows.start_time,
	shows.venue_id, venues.name AS venue_name, venues.image_link AS venue_image_link,
	shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link`

func showRows(db *gorm.DB) *gorm.DB {
	return db.Table("shows").
		Select(showRowColumns).
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term literally anywhere in
// a lower-cased column. The empty term matches everything.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// ilike is the portable case-insensitive substring predicate for col.
func ilike(col string) string {
	return "LOWER(" + col + `) LIKE ? ESCAPE '\'`
}
