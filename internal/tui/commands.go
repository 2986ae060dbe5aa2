package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"movie-search/internal/domain"
	"movie-search/internal/repository"
)

// Message types for async operations

// debounceElapsedMsg fires when the quiet period after a keystroke ends. The
// tag identifies which keystroke armed the timer; a stale tag is ignored.
type debounceElapsedMsg struct {
	tag int
}

// moviesLoadedMsg is sent when a fetch completes. The tag is the debounce tag
// that started the fetch, so late responses for an abandoned term are dropped.
type moviesLoadedMsg struct {
	tag    int
	query  string
	movies []domain.Movie
}

// fetchFailedMsg wraps any metadata API failure
type fetchFailedMsg struct {
	tag int
	err error
}

// searchTrackedMsg is sent after the tracker ran (successfully or not)
type searchTrackedMsg struct {
	term string
}

// historyRecordedMsg is sent after the local history write
type historyRecordedMsg struct{}

// trendingLoadedMsg carries the current top searched terms
type trendingLoadedMsg struct {
	records []*domain.SearchRecord
}

// historyLoadedMsg carries the local recent searches
type historyLoadedMsg struct {
	entries []*domain.SearchHistory
}

// Bubble Tea commands for async operations

// debounceCmd arms the quiet-period timer for the given keystroke tag
func debounceCmd(d time.Duration, tag int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceElapsedMsg{tag: tag}
	})
}

// fetchMoviesCmd queries the metadata API for the active term
func fetchMoviesCmd(ctx context.Context, fetcher movieFetcher, tag int, query string) tea.Cmd {
	return func() tea.Msg {
		movies, err := fetcher.FetchMovies(ctx, query)
		if err != nil {
			return fetchFailedMsg{tag: tag, err: err}
		}
		return moviesLoadedMsg{tag: tag, query: query, movies: movies}
	}
}

// trackSearchCmd records the term in the remote popularity counters. The
// tracker swallows its own failures, so this always yields searchTrackedMsg.
func trackSearchCmd(ctx context.Context, tracker searchTracker, term string, topResult *domain.Movie) tea.Cmd {
	return func() tea.Msg {
		tracker.TrackSearch(ctx, term, topResult)
		return searchTrackedMsg{term: term}
	}
}

// recordHistoryCmd writes the term to the local recent-searches store
func recordHistoryCmd(ctx context.Context, repo repository.SearchHistoryRepository, term string, resultCount int) tea.Cmd {
	return func() tea.Msg {
		entry := domain.NewSearchHistory(term, resultCount)
		// best-effort like the remote tracker; the search flow never fails
		// because a history write did
		_ = repo.RecordSearch(ctx, entry)
		return historyRecordedMsg{}
	}
}

// loadTrendingCmd fetches the top searched terms for the trending panel
func loadTrendingCmd(ctx context.Context, reader trendingReader, limit int) tea.Cmd {
	return func() tea.Msg {
		return trendingLoadedMsg{records: reader.Trending(ctx, limit)}
	}
}

// loadHistoryCmd fetches local recent searches for the dropdown
func loadHistoryCmd(ctx context.Context, repo repository.SearchHistoryRepository) tea.Cmd {
	return func() tea.Msg {
		entries, err := repo.List(ctx, historyDropdownSize)
		if err != nil {
			return historyLoadedMsg{}
		}
		return historyLoadedMsg{entries: entries}
	}
}
