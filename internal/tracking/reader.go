package tracking

import (
	"context"

	"movie-search/internal/domain"
	"movie-search/internal/logger"
	"movie-search/internal/repository"
)

const DefaultTrendingLimit = 5

// Reader serves the trending list: the most-searched terms by count. Like
// the tracker it degrades silently; callers treat an empty result as
// "nothing to show".
type Reader struct {
	repo repository.SearchRecordRepository
	log  *logger.Logger
}

func NewReader(repo repository.SearchRecordRepository, log *logger.Logger) *Reader {
	return &Reader{
		repo: repo,
		log:  log.WithField("component", "trending_reader"),
	}
}

// Trending returns up to limit records ordered by count descending. Ties are
// in the store's native order. On failure it logs and returns nil.
func (r *Reader) Trending(ctx context.Context, limit int) []*domain.SearchRecord {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	records, err := r.repo.TopByCount(ctx, limit)
	if err != nil {
		r.log.WithError(err).Warn("failed to load trending searches")
		return nil
	}

	if len(records) > limit {
		records = records[:limit]
	}
	return records
}
