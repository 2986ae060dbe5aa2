package export

import (
	"fmt"
	"time"

	"movie-search/internal/domain"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported export format %q (expected json or csv)", s)
	}
}

// TrendingExport is the serialized top-terms snapshot.
type TrendingExport struct {
	Version     string                 `json:"version"`
	GeneratedAt time.Time              `json:"generated_at"`
	Records     []*domain.SearchRecord `json:"records"`
}

// HistoryExport is the serialized local search history.
type HistoryExport struct {
	Version     string                  `json:"version"`
	GeneratedAt time.Time               `json:"generated_at"`
	Entries     []*domain.SearchHistory `json:"entries"`
}

const exportVersion = "1.0"
