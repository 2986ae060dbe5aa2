package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"movie-search/internal/display"
	"movie-search/internal/domain"
	"movie-search/internal/repository"
	"movie-search/internal/theme"
)

type searchState int

const (
	stateIdle searchState = iota
	stateLoading
	stateSuccess
	stateError
)

// errFetchMessage is the single user-facing failure string. The UI does not
// distinguish "no results" from "request failed".
const errFetchMessage = "Error fetching movies. Please try again later."

const historyDropdownSize = 8

// movieFetcher is what the model needs from the metadata client
type movieFetcher interface {
	FetchMovies(ctx context.Context, query string) ([]domain.Movie, error)
}

// searchTracker is what the model needs from the popularity tracker
type searchTracker interface {
	TrackSearch(ctx context.Context, term string, topResult *domain.Movie)
}

// trendingReader is what the model needs from the trending reader
type trendingReader interface {
	Trending(ctx context.Context, limit int) []*domain.SearchRecord
}

type historyDropdown struct {
	active  bool
	cursor  int
	matches []*domain.SearchHistory
}

type Model struct {
	fetcher     movieFetcher
	tracker     searchTracker
	reader      trendingReader
	historyRepo repository.SearchHistoryRepository

	searchInput textinput.Model
	spin        spinner.Model
	table       table.Model
	keys        keyMap

	state      searchState
	movies     []domain.Movie
	activeTerm string

	// debounce: the tag is bumped on every keystroke and stamped onto the
	// timer and the fetch it starts, so both collapse to the newest term
	debounce    time.Duration
	debounceTag int

	trending      []*domain.SearchRecord
	trendingLimit int
	showTrending  bool

	history  []*domain.SearchHistory
	dropdown historyDropdown

	theme  *theme.Theme
	styles *theme.Styles

	width  int
	height int

	ctx context.Context
}

func NewModel(
	ctx context.Context,
	fetcher movieFetcher,
	tracker searchTracker,
	reader trendingReader,
	historyRepo repository.SearchHistoryRepository,
	debounce time.Duration,
	trendingLimit int,
	themeObj *theme.Theme,
	styles *theme.Styles,
) Model {
	input := textinput.New()
	input.Placeholder = "Search through thousands of movies"
	input.Prompt = "🔍 "
	input.CharLimit = 120
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.Spinner

	columns := []table.Column{
		{Title: "Title", Width: 44},
		{Title: "Rating", Width: 8},
		{Title: "Lang", Width: 6},
		{Title: "Year", Width: 6},
	}

	resultTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(12),
	)

	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		Bold(true).
		Foreground(styles.Header.GetForeground()).
		Background(styles.Header.GetBackground())
	tableStyles.Selected = tableStyles.Selected.
		Foreground(styles.DropdownSel.GetForeground()).
		Background(styles.DropdownSel.GetBackground())
	resultTable.SetStyles(tableStyles)

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return Model{
		fetcher:       fetcher,
		tracker:       tracker,
		reader:        reader,
		historyRepo:   historyRepo,
		searchInput:   input,
		spin:          spin,
		table:         resultTable,
		keys:          defaultKeyMap(),
		state:         stateIdle,
		debounce:      debounce,
		trendingLimit: trendingLimit,
		showTrending:  true,
		theme:         themeObj,
		styles:        styles,
		ctx:           ctx,
	}
}

// Init starts the spinner, loads the popularity-sorted discover list and
// warms the trending panel and history dropdown.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spin.Tick,
		m.startFetch(),
		loadTrendingCmd(m.ctx, m.reader, m.trendingLimit),
		loadHistoryCmd(m.ctx, m.historyRepo),
	)
}

// startFetch promotes the current input value to the active term and begins
// a fetch stamped with the current debounce tag.
func (m *Model) startFetch() tea.Cmd {
	m.activeTerm = m.searchInput.Value()
	m.state = stateLoading
	return fetchMoviesCmd(m.ctx, m.fetcher, m.debounceTag, m.activeTerm)
}

func (m *Model) setMovies(movies []domain.Movie) {
	m.movies = movies

	rows := make([]table.Row, 0, len(movies))
	for i := range movies {
		rows = append(rows, display.MovieRow(&movies[i], 42))
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m *Model) clearMovies() {
	m.movies = nil
	m.table.SetRows(nil)
}
