package domain

import (
	"fmt"
	"strings"
)

// PosterBaseURL is the image CDN prefix for poster paths returned by the
// metadata API.
const PosterBaseURL = "https://image.tmdb.org/t/p/w500"

// Movie is one result from the metadata API. Field names follow the API's
// JSON payload; PosterPath is a pointer because the API omits it for movies
// without artwork.
type Movie struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	VoteAverage      float64 `json:"vote_average"`
	OriginalLanguage string  `json:"original_language"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       *string `json:"poster_path"`
}

// PosterURL returns the full image URL, or nil when the movie has no poster.
// It never returns a URL built from a missing path.
func (m *Movie) PosterURL() *string {
	if m.PosterPath == nil || *m.PosterPath == "" {
		return nil
	}
	url := PosterBaseURL + *m.PosterPath
	return &url
}

// ReleaseYear returns the four-digit year, or "-" when the date is absent.
func (m *Movie) ReleaseYear() string {
	if len(m.ReleaseDate) < 4 {
		return "-"
	}
	return m.ReleaseDate[:4]
}

// RatingLabel returns the vote average with one decimal, or "N/A" for
// unrated movies.
func (m *Movie) RatingLabel() string {
	if m.VoteAverage == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// LanguageLabel returns the uppercased language code, or "-" when absent.
func (m *Movie) LanguageLabel() string {
	if m.OriginalLanguage == "" {
		return "-"
	}
	return strings.ToUpper(m.OriginalLanguage)
}
