package tracking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"movie-search/internal/domain"
	"movie-search/internal/logger"
	"movie-search/internal/repository"
)

// Tracker records which search terms produced results, as popularity
// counters in the remote store. Tracking is best-effort: no error ever
// reaches a caller, a failed write is logged and dropped.
//
// Calls for the same exact term are serialized inside the process, so the
// read-then-write upsert cannot race with itself here. The store has no
// uniqueness constraint, so two separate processes can still create
// duplicates for a term they both see as new.
type Tracker struct {
	repo repository.SearchRecordRepository
	log  *logger.Logger

	mu    sync.Mutex
	terms map[string]*sync.Mutex
}

func NewTracker(repo repository.SearchRecordRepository, log *logger.Logger) *Tracker {
	return &Tracker{
		repo:  repo,
		log:   log.WithField("component", "tracker"),
		terms: make(map[string]*sync.Mutex),
	}
}

// TrackSearch upserts the counter for term: increments the existing record
// or creates one with count 1 keyed to the top result. The term is used
// exactly as typed.
func (t *Tracker) TrackSearch(ctx context.Context, term string, topResult *domain.Movie) {
	defer func() {
		if r := recover(); r != nil {
			t.log.WithField("panic", r).Error("tracking panicked")
		}
	}()

	if term == "" || topResult == nil {
		return
	}

	lock := t.termLock(term)
	lock.Lock()
	defer lock.Unlock()

	if err := t.upsert(ctx, term, topResult); err != nil {
		t.log.WithError(err).WithField("term", term).Warn("failed to track search")
	}
}

func (t *Tracker) upsert(ctx context.Context, term string, topResult *domain.Movie) error {
	record, err := t.repo.FindByTerm(ctx, term)

	switch {
	case err == nil:
		if err := t.repo.SetCount(ctx, record.ID, record.Count+1); err != nil {
			return fmt.Errorf("increment count: %w", err)
		}

	case errors.Is(err, repository.ErrNotFound):
		record := domain.NewSearchRecord(term, topResult)
		if err := t.repo.Create(ctx, record); err != nil {
			return fmt.Errorf("create record: %w", err)
		}

	default:
		return fmt.Errorf("look up record: %w", err)
	}

	return nil
}

func (t *Tracker) termLock(term string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	lock, ok := t.terms[term]
	if !ok {
		lock = &sync.Mutex{}
		t.terms[term] = lock
	}
	return lock
}
