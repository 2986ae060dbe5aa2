package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"movie-search/internal/config"
	"movie-search/internal/display"
)

var trendingLimit int

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show the most searched movie terms",
	Long: `Shows the terms with the highest search counts across all users of this
deployment, most popular first.`,
	RunE: runTrending,
}

func init() {
	trendingCmd.Flags().IntVarP(&trendingLimit, "limit", "n", 0, "number of terms to show (default from config)")
	rootCmd.AddCommand(trendingCmd)
}

func runTrending(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := newCommandLogger(cfg)

	repo, err := newRecordRepository(cfg, log)
	if err != nil {
		return err
	}

	limit := trendingLimit
	if limit <= 0 {
		limit = cfg.TrendingLimit
	}

	records, err := repo.TopByCount(context.Background(), limit)
	if err != nil {
		return fmt.Errorf("failed to fetch trending terms: %w", err)
	}

	_, styles := loadStyles(cfg)

	fmt.Println()
	fmt.Println(styles.Title.Render("Trending searches"))
	fmt.Println()

	if len(records) == 0 {
		fmt.Println(styles.Info.Render("No searches recorded yet."))
		fmt.Println()
		return nil
	}

	for i, record := range records {
		rank := styles.TrendingRank.Render(fmt.Sprintf("%2d.", i+1))
		term := styles.TrendingTerm.Render(display.Truncate(record.SearchTerm, 40))
		count := styles.TrendingCount.Render(display.FormatCount(record.Count))
		fmt.Printf("  %s %s  %s\n", rank, term, count)
	}
	fmt.Println()

	return nil
}
