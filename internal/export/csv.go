package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"movie-search/internal/domain"
)

func WriteTrendingCSV(w io.Writer, records []*domain.SearchRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"id", "search_term", "count", "movie_id", "poster_url"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		posterURL := ""
		if rec.PosterURL != nil {
			posterURL = *rec.PosterURL
		}

		row := []string{
			rec.ID,
			rec.SearchTerm,
			strconv.Itoa(rec.Count),
			strconv.FormatInt(rec.MovieID, 10),
			posterURL,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func WriteHistoryCSV(w io.Writer, entries []*domain.SearchHistory) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"id", "term", "result_count", "created_at", "updated_at"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		row := []string{
			strconv.FormatInt(entry.ID, 10),
			entry.Term,
			strconv.Itoa(entry.ResultCount),
			entry.CreatedAt.Format(time.RFC3339),
			entry.UpdatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
