package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"movie-search/internal/config"
	"movie-search/internal/repository/sqlite"
	"movie-search/internal/tracking"
	"movie-search/internal/tui"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Open the interactive movie search",
	Long: `Opens the full-screen search interface. Results update as you type,
and each completed search feeds the shared trending list.`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := newTUILogger(cfg)

	fetcher, err := newMetadataClient(cfg, log)
	if err != nil {
		return err
	}

	recordRepo, err := newRecordRepository(cfg, log)
	if err != nil {
		return err
	}
	tracker := tracking.NewTracker(recordRepo, log)
	reader := tracking.NewReader(recordRepo, log)

	db, err := newHistoryDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	historyRepo := sqlite.NewSearchHistoryRepository(db)

	themeObj, styles := loadStyles(cfg)

	model := tui.NewModel(
		context.Background(),
		fetcher,
		tracker,
		reader,
		historyRepo,
		cfg.Debounce(),
		cfg.TrendingLimit,
		themeObj,
		styles,
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run search: %w", err)
	}

	return nil
}
