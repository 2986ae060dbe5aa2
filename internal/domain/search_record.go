package domain

import (
	"fmt"
	"strings"
)

// SearchRecord is one popularity counter in the hosted document store. The
// store assigns IDs, so ID is empty until the record has been created. The
// term is stored exactly as typed; "Batman" and "batman" are separate
// records.
type SearchRecord struct {
	ID         string  `json:"$id,omitempty"`
	SearchTerm string  `json:"searchTerm"`
	Count      int     `json:"count"`
	MovieID    int64   `json:"movieId"`
	PosterURL  *string `json:"posterUrl"`
}

func (r *SearchRecord) Validate() error {
	if strings.TrimSpace(r.SearchTerm) == "" {
		return fmt.Errorf("search term is required")
	}
	if r.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	if r.MovieID == 0 {
		return fmt.Errorf("movie id is required")
	}
	return nil
}

// NewSearchRecord builds the first record for a term, snapshotting the top
// result at the time of the search.
func NewSearchRecord(term string, topResult *Movie) *SearchRecord {
	return &SearchRecord{
		SearchTerm: term,
		Count:      1,
		MovieID:    topResult.ID,
		PosterURL:  topResult.PosterURL(),
	}
}
