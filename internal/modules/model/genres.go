package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

const genreSep = ","

// Genres is stored as a single comma-joined column.
type Genres []string

// NewGenres trims every entry and drops empty ones, keeping order.
func NewGenres(in ...string) Genres {
	out := make(Genres, 0, len(in))
	for _, g := range in {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func ParseGenres(s string) Genres {
	if s == "" {
		return Genres{}
	}
	return NewGenres(strings.Split(s, genreSep)...)
}

func (g Genres) String() string {
	return strings.Join(NewGenres(g...), genreSep)
}

func (g Genres) Value() (driver.Value, error) {
	return g.String(), nil
}

func (g *Genres) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = Genres{}
	case string:
		*g = ParseGenres(v)
	case []byte:
		*g = ParseGenres(string(v))
	default:
		return fmt.Errorf("genres: unsupported scan type %T", src)
	}
	return nil
}

func (Genres) GormDataType() string { return "string" }
