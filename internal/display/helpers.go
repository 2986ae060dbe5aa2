package display

import (
	"fmt"

	"movie-search/internal/domain"
	"movie-search/internal/theme"
)

// RatingStyle picks the style tier for a vote average.
func RatingStyle(styles *theme.Styles, voteAverage float64) string {
	label := fmt.Sprintf("%.1f", voteAverage)
	switch {
	case voteAverage >= 7.0:
		return styles.RatingHigh.Render(label)
	case voteAverage >= 5.0:
		return styles.RatingMid.Render(label)
	case voteAverage > 0:
		return styles.RatingLow.Render(label)
	default:
		return "N/A"
	}
}

// Truncate shortens s to max runes with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// FormatCount renders a search count with its unit.
func FormatCount(count int) string {
	if count == 1 {
		return "1 search"
	}
	return fmt.Sprintf("%d searches", count)
}

// MovieRow renders the fixed columns of a result line.
func MovieRow(m *domain.Movie, titleWidth int) []string {
	return []string{
		Truncate(m.Title, titleWidth),
		m.RatingLabel(),
		m.LanguageLabel(),
		m.ReleaseYear(),
	}
}
