package tracking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-search/internal/domain"
	"movie-search/internal/logger"
)

func seedRecords(repo *fakeRecordRepository, counts map[string]int) {
	id := 0
	for term, count := range counts {
		id++
		repo.records[term] = &domain.SearchRecord{
			ID:         term,
			SearchTerm: term,
			Count:      count,
			MovieID:    int64(id),
		}
	}
}

func TestReader_Trending(t *testing.T) {
	repo := newFakeRecordRepository()
	seedRecords(repo, map[string]int{
		"batman": 9, "dune": 7, "heat": 5, "alien": 3, "tron": 2, "brazil": 1,
	})
	reader := NewReader(repo, logger.Discard())

	records := reader.Trending(context.Background(), 5)

	require.Len(t, records, 5)
	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t, records[i-1].Count, records[i].Count,
			"records must be ordered by count descending")
	}
	assert.Equal(t, "batman", records[0].SearchTerm)
}

func TestReader_DefaultLimit(t *testing.T) {
	repo := newFakeRecordRepository()
	seedRecords(repo, map[string]int{
		"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6, "g": 7,
	})
	reader := NewReader(repo, logger.Discard())

	records := reader.Trending(context.Background(), 0)
	assert.Len(t, records, DefaultTrendingLimit)
}

func TestReader_FewerRecordsThanLimit(t *testing.T) {
	repo := newFakeRecordRepository()
	seedRecords(repo, map[string]int{"batman": 2})
	reader := NewReader(repo, logger.Discard())

	records := reader.Trending(context.Background(), 5)
	assert.Len(t, records, 1)
}

func TestReader_ErrorReturnsNil(t *testing.T) {
	repo := newFakeRecordRepository()
	repo.failFind = errors.New("store unavailable")
	reader := NewReader(repo, logger.Discard())

	records := reader.Trending(context.Background(), 5)
	assert.Nil(t, records)
}
