// Package web holds the HTML templates, parsed once at startup.
package web

import (
	"embed"
	"html/template"
	"slices"
	"strings"
	"time"
)

//go:embed templates
var files embed.FS

// GenreChoices are the genres offered by the venue and artist forms.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop",
	"Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

const (
	fullLayout   = "Monday January 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01/02/2006 3:04PM"
)

// FormatDateTime renders t as "full" (the default) or "medium".
func FormatDateTime(t time.Time, format string) string {
	if t.IsZero() {
		return ""
	}
	if format == "medium" {
		return t.Format(mediumLayout)
	}
	return t.Format(fullLayout)
}

var funcs = template.FuncMap{
	"datetime": FormatDateTime,
	"join":     func(s []string) string { return strings.Join(s, ", ") },
	"has":      func(s []string, v string) bool { return slices.Contains(s, v) },
	"genres":   func() []string { return GenreChoices },
	"dict":     dict,
}

// dict builds a map from alternating keys and values for passing several
// values into a nested template.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return m
}

// Templates parses every page; names are paths relative to templates/.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files,
		"templates/layout/*.html",
		"templates/pages/*.html",
		"templates/venues/*.html",
		"templates/artists/*.html",
		"templates/shows/*.html",
		"templates/errors/*.html",
	)
}

func MustTemplates() *template.Template {
	return template.Must(Templates())
}
