package repository

import (
	"context"
	"errors"

	"movie-search/internal/domain"
)

// ErrNotFound is returned by lookups that match no record.
var ErrNotFound = errors.New("record not found")

// SearchRecordRepository is the remote popularity counter store. Lookups are
// exact-match on the term as typed; ordering among equal counts is whatever
// the store returns.
type SearchRecordRepository interface {
	// FindByTerm returns the record whose searchTerm equals term exactly,
	// or ErrNotFound.
	FindByTerm(ctx context.Context, term string) (*domain.SearchRecord, error)

	// Create stores a new record and fills in its store-assigned ID.
	Create(ctx context.Context, record *domain.SearchRecord) error

	// SetCount overwrites the count of an existing record.
	SetCount(ctx context.Context, id string, count int) error

	// TopByCount returns up to limit records ordered by count descending.
	TopByCount(ctx context.Context, limit int) ([]*domain.SearchRecord, error)
}
