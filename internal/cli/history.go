package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"movie-search/internal/config"
	"movie-search/internal/display"
	"movie-search/internal/repository/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your local search history",
	Long: `Shows searches made from this machine, most recent first. History is
stored locally and never leaves your computer.`,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all local search history",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show (0 for all)")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := newHistoryDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	repo := sqlite.NewSearchHistoryRepository(db)

	entries, err := repo.List(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	_, styles := loadStyles(cfg)

	fmt.Println()
	fmt.Println(styles.Title.Render("Search history"))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println(styles.Info.Render("No searches yet."))
		fmt.Println()
		return nil
	}

	for _, entry := range entries {
		term := styles.TrendingTerm.Render(display.Truncate(entry.Term, 40))
		when := styles.Subtitle.Render(entry.GetRelativeTime())
		fmt.Printf("  %s  %s (%d results)\n", term, when, entry.ResultCount)
	}
	fmt.Println()

	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := newHistoryDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	repo := sqlite.NewSearchHistoryRepository(db)

	count, err := repo.Count(context.Background())
	if err != nil {
		return fmt.Errorf("failed to count history: %w", err)
	}
	if count == 0 {
		fmt.Println("History is already empty.")
		return nil
	}

	if err := repo.Clear(context.Background()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	_, styles := loadStyles(cfg)
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Cleared %d history entries", count)))

	return nil
}
