package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SearchHistory is a locally stored recent search, deduplicated on the exact
// term. Unlike SearchRecord it never leaves the machine.
type SearchHistory struct {
	ID          int64     `db:"id" json:"id"`
	Term        string    `db:"term" json:"term"`
	ResultCount int       `db:"result_count" json:"result_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

func (s *SearchHistory) Validate() error {
	if strings.TrimSpace(s.Term) == "" {
		return errors.New("term cannot be empty")
	}

	if s.ResultCount < 0 {
		return errors.New("result count cannot be negative")
	}

	return nil
}

func (s *SearchHistory) GetRelativeTime() string {
	duration := time.Since(s.UpdatedAt)

	seconds := int(duration.Seconds())
	minutes := int(duration.Minutes())
	hours := int(duration.Hours())
	days := int(duration.Hours() / 24)

	switch {
	case seconds < 60:
		return "just now"
	case minutes == 1:
		return "1 minute ago"
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	case hours == 1:
		return "1 hour ago"
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	default:
		return s.UpdatedAt.Format("2006-01-02")
	}
}

func (s *SearchHistory) GetDisplayText() string {
	return fmt.Sprintf("%s (%s)", s.Term, s.GetRelativeTime())
}

func NewSearchHistory(term string, resultCount int) *SearchHistory {
	now := time.Now()
	return &SearchHistory{
		Term:        term,
		ResultCount: resultCount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
