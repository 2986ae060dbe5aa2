package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"movie-search/internal/domain"
	"movie-search/internal/fuzzy"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceElapsedMsg:
		// a newer keystroke re-armed the timer; let the newest one win
		if msg.tag != m.debounceTag {
			return m, nil
		}
		return m, tea.Batch(m.startFetch(), m.spin.Tick)

	case moviesLoadedMsg:
		// a fetch for an abandoned term; never let it overwrite state
		if msg.tag != m.debounceTag {
			return m, nil
		}
		return m.handleMoviesLoaded(msg)

	case fetchFailedMsg:
		if msg.tag != m.debounceTag {
			return m, nil
		}
		m.state = stateError
		m.clearMovies()
		return m, nil

	case searchTrackedMsg:
		// counts changed, refresh the panel
		return m, loadTrendingCmd(m.ctx, m.reader, m.trendingLimit)

	case historyRecordedMsg:
		return m, loadHistoryCmd(m.ctx, m.historyRepo)

	case trendingLoadedMsg:
		m.trending = msg.records
		return m, nil

	case historyLoadedMsg:
		m.history = msg.entries
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case m.dropdown.active:
		return m.handleDropdownKey(msg)

	case key.Matches(msg, m.keys.Trending):
		m.showTrending = !m.showTrending
		return m, nil

	case key.Matches(msg, m.keys.History):
		m.openDropdown()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.searchInput.Value() == "" {
			return m, tea.Quit
		}
		m.searchInput.SetValue("")
		m.debounceTag++
		return m, debounceCmd(m.debounce, m.debounceTag)

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	// everything else edits the search box; the raw term updates
	// immediately, only the fetch is debounced
	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != before {
		m.debounceTag++
		return m, tea.Batch(cmd, debounceCmd(m.debounce, m.debounceTag))
	}
	return m, cmd
}

func (m *Model) openDropdown() {
	if len(m.history) == 0 {
		return
	}

	pattern := m.searchInput.Value()
	if pattern == "" {
		m.dropdown = historyDropdown{active: true, matches: m.history}
		return
	}

	terms := make([]string, len(m.history))
	for i, entry := range m.history {
		terms[i] = entry.Term
	}

	results := fuzzy.MatchMany(pattern, terms, 1)
	matches := make([]*domain.SearchHistory, 0, len(results))
	for _, res := range results {
		matches = append(matches, m.history[res.Index])
	}

	if len(matches) == 0 {
		matches = m.history
	}
	m.dropdown = historyDropdown{active: true, matches: matches}
}

func (m Model) handleDropdownKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.History):
		m.dropdown = historyDropdown{}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.dropdown.cursor > 0 {
			m.dropdown.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.dropdown.cursor < len(m.dropdown.matches)-1 {
			m.dropdown.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.dropdown.cursor < len(m.dropdown.matches) {
			selected := m.dropdown.matches[m.dropdown.cursor]
			m.searchInput.SetValue(selected.Term)
			m.searchInput.CursorEnd()
			m.dropdown = historyDropdown{}
			m.debounceTag++
			return m, debounceCmd(m.debounce, m.debounceTag)
		}
		m.dropdown = historyDropdown{}
		return m, nil
	}

	return m, nil
}

func (m Model) handleMoviesLoaded(msg moviesLoadedMsg) (tea.Model, tea.Cmd) {
	if len(msg.movies) == 0 {
		m.state = stateError
		m.clearMovies()
		return m, nil
	}

	m.state = stateSuccess
	m.setMovies(msg.movies)

	// track exactly once per successful search, keyed to the first result;
	// the discover list (empty query) is never tracked
	if msg.query != "" {
		top := msg.movies[0]
		return m, tea.Batch(
			trackSearchCmd(m.ctx, m.tracker, msg.query, &top),
			recordHistoryCmd(m.ctx, m.historyRepo, msg.query, len(msg.movies)),
		)
	}
	return m, nil
}
