package metadata

import "movie-search/internal/domain"

// movieListResponse is the wire shape of both the discover and the search
// endpoints: a results array of movie summaries plus paging fields we ignore.
// Results is a pointer so a body without the field decodes to nil and can be
// told apart from a present-but-empty array.
type movieListResponse struct {
	Page         int             `json:"page"`
	Results      *[]domain.Movie `json:"results"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
}
