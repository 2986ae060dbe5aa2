package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"movie-search/internal/domain"
)

func TestSuccessfulSearchTracksExactlyOnce(t *testing.T) {
	m, deps := newTestModel(t)
	deps.reader.records = []*domain.SearchRecord{
		{ID: "a", SearchTerm: "batman", Count: 9, MovieID: 155},
	}

	movies := []domain.Movie{
		{ID: 155, Title: "The Dark Knight", VoteAverage: 9.0},
		{ID: 268, Title: "Batman", VoteAverage: 7.2},
	}

	m, cmd := applyMsg(t, m, moviesLoadedMsg{tag: m.debounceTag, query: "batman", movies: movies})

	if m.state != stateSuccess {
		t.Fatalf("expected success state, got %v", m.state)
	}
	if len(m.table.Rows()) != 2 {
		t.Errorf("expected 2 table rows, got %d", len(m.table.Rows()))
	}

	msgs := collectMsgs(cmd)

	deps.tracker.mu.Lock()
	if len(deps.tracker.terms) != 1 {
		t.Fatalf("expected exactly one tracking call, got %d", len(deps.tracker.terms))
	}
	if deps.tracker.terms[0] != "batman" {
		t.Errorf("expected tracked term %q, got %q", "batman", deps.tracker.terms[0])
	}
	if deps.tracker.tops[0].ID != 155 {
		t.Errorf("expected the first result to be tracked, got movie %d", deps.tracker.tops[0].ID)
	}
	deps.tracker.mu.Unlock()

	deps.history.mu.Lock()
	if len(deps.history.entries) != 1 || deps.history.entries[0].Term != "batman" {
		t.Error("expected local history to record the term")
	}
	if deps.history.entries[0].ResultCount != 2 {
		t.Errorf("expected result count 2, got %d", deps.history.entries[0].ResultCount)
	}
	deps.history.mu.Unlock()

	// the tracked message refreshes the trending panel
	var sawTracked bool
	for _, msg := range msgs {
		if tracked, ok := msg.(searchTrackedMsg); ok {
			sawTracked = true
			refreshed, refreshCmd := applyMsg(t, m, tracked)
			for _, refreshMsg := range collectMsgs(refreshCmd) {
				refreshed, _ = applyMsg(t, refreshed, refreshMsg)
			}
			if len(refreshed.trending) != 1 {
				t.Error("expected trending panel refresh after tracking")
			}
		}
	}
	if !sawTracked {
		t.Error("expected a searchTrackedMsg after a tracked search")
	}
}

func TestDiscoverListIsNeverTracked(t *testing.T) {
	m, deps := newTestModel(t)

	movies := []domain.Movie{{ID: 1, Title: "Top Movie"}}
	m, cmd := applyMsg(t, m, moviesLoadedMsg{tag: m.debounceTag, query: "", movies: movies})

	if m.state != stateSuccess {
		t.Fatalf("expected success state, got %v", m.state)
	}

	collectMsgs(cmd)

	deps.tracker.mu.Lock()
	defer deps.tracker.mu.Unlock()
	if len(deps.tracker.terms) != 0 {
		t.Errorf("discover results must not be tracked, got %d calls", len(deps.tracker.terms))
	}
}

func TestZeroResultsEntersErrorStateWithoutTracking(t *testing.T) {
	m, deps := newTestModel(t)

	// seed some prior results
	m, _ = applyMsg(t, m, moviesLoadedMsg{tag: m.debounceTag, query: "", movies: []domain.Movie{{ID: 1, Title: "X"}}})

	m, cmd := applyMsg(t, m, moviesLoadedMsg{tag: m.debounceTag, query: "zzzz", movies: nil})

	if m.state != stateError {
		t.Fatalf("expected error state, got %v", m.state)
	}
	if cmd != nil {
		t.Error("zero results must not trigger tracking")
	}
	if len(m.table.Rows()) != 0 {
		t.Error("expected the result list to be cleared")
	}

	deps.tracker.mu.Lock()
	defer deps.tracker.mu.Unlock()
	if len(deps.tracker.terms) != 0 {
		t.Error("expected no tracking call for zero results")
	}
}

func TestFetchFailureEntersErrorState(t *testing.T) {
	m, deps := newTestModel(t)
	deps.fetcher.fetchErr = errors.New("status 500")

	m = typeString(t, m, "batman")
	m, cmd := applyMsg(t, m, debounceElapsedMsg{tag: m.debounceTag})

	for _, msg := range collectMsgs(cmd) {
		m, _ = applyMsg(t, m, msg)
	}

	if m.state != stateError {
		t.Fatalf("expected error state after fetch failure, got %v", m.state)
	}
	if len(m.movies) != 0 {
		t.Error("expected the result list to be empty after failure")
	}

	deps.tracker.mu.Lock()
	defer deps.tracker.mu.Unlock()
	if len(deps.tracker.terms) != 0 {
		t.Error("expected no tracking call after a failed fetch")
	}
}

func TestHistoryDropdownSelection(t *testing.T) {
	m, _ := newTestModel(t)

	entries := []*domain.SearchHistory{
		{ID: 1, Term: "batman", UpdatedAt: time.Now()},
		{ID: 2, Term: "dune", UpdatedAt: time.Now()},
	}
	m, _ = applyMsg(t, m, historyLoadedMsg{entries: entries})

	m, _ = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if !m.dropdown.active {
		t.Fatal("expected dropdown to open")
	}

	m, _ = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.dropdown.active {
		t.Error("expected dropdown to close after selection")
	}
	if m.searchInput.Value() != "dune" {
		t.Errorf("expected selected term in the input, got %q", m.searchInput.Value())
	}
	if cmd == nil {
		t.Error("expected a debounce timer after selection")
	}
}

func TestHistoryDropdownFuzzyFilter(t *testing.T) {
	m, _ := newTestModel(t)

	entries := []*domain.SearchHistory{
		{ID: 1, Term: "batman", UpdatedAt: time.Now()},
		{ID: 2, Term: "dune", UpdatedAt: time.Now()},
		{ID: 3, Term: "batman returns", UpdatedAt: time.Now()},
	}
	m, _ = applyMsg(t, m, historyLoadedMsg{entries: entries})

	m = typeString(t, m, "bat")
	m, _ = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	if len(m.dropdown.matches) != 2 {
		t.Fatalf("expected 2 fuzzy matches for %q, got %d", "bat", len(m.dropdown.matches))
	}
	for _, match := range m.dropdown.matches {
		if !strings.Contains(match.Term, "batman") {
			t.Errorf("unexpected match %q", match.Term)
		}
	}
}

func TestTrendingToggle(t *testing.T) {
	m, _ := newTestModel(t)

	if !m.showTrending {
		t.Fatal("expected trending panel on by default")
	}

	m, _ = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.showTrending {
		t.Error("expected ctrl+t to hide the trending panel")
	}
}

func TestView_States(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeString(t, m, "batman")
	m, _ = applyMsg(t, m, debounceElapsedMsg{tag: m.debounceTag})
	if !strings.Contains(m.View(), "Searching...") {
		t.Error("expected a spinner line while loading")
	}

	m, _ = applyMsg(t, m, moviesLoadedMsg{tag: m.debounceTag, query: "batman", movies: nil})
	if !strings.Contains(m.View(), errFetchMessage) {
		t.Error("expected the static error message in error state")
	}

	movies := []domain.Movie{{ID: 155, Title: "The Dark Knight", VoteAverage: 9.0, ReleaseDate: "2008-07-18"}}
	m, _ = applyMsg(t, m, moviesLoadedMsg{tag: m.debounceTag, query: "batman", movies: movies})
	view := m.View()
	if !strings.Contains(view, "The Dark Knight") {
		t.Error("expected results in success state")
	}
	if strings.Contains(view, errFetchMessage) {
		t.Error("expected the error banner to be gone in success state")
	}
}
