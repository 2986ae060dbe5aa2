package export

import (
	"encoding/json"
	"io"
	"time"

	"movie-search/internal/domain"
)

func WriteTrendingJSON(w io.Writer, records []*domain.SearchRecord) error {
	export := &TrendingExport{
		Version:     exportVersion,
		GeneratedAt: time.Now(),
		Records:     records,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

func WriteHistoryJSON(w io.Writer, entries []*domain.SearchHistory) error {
	export := &HistoryExport{
		Version:     exportVersion,
		GeneratedAt: time.Now(),
		Entries:     entries,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}
