package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"movie-search/internal/config"
	"movie-search/internal/export"
	"movie-search/internal/repository/sqlite"
)

var (
	exportFormat string
	exportOutput string
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:       "export [trending|history]",
	Short:     "Export trending terms or local history",
	Long:      `Exports trending search terms or your local search history as JSON or CSV.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"trending", "history"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format (json or csv)")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVarP(&exportLimit, "limit", "n", 0, "number of entries to export (0 for all)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var out io.Writer = os.Stdout
	if exportOutput != "" {
		file, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	switch args[0] {
	case "trending":
		err = exportTrending(cfg, format, out)
	case "history":
		err = exportHistory(cfg, format, out)
	default:
		err = fmt.Errorf("unknown export target %q (expected trending or history)", args[0])
	}
	if err != nil {
		return err
	}

	if exportOutput != "" {
		fmt.Fprintf(os.Stderr, "✓ Exported %s to %s\n", args[0], exportOutput)
	}

	return nil
}

func exportTrending(cfg *config.Config, format export.Format, out io.Writer) error {
	log := newCommandLogger(cfg)

	repo, err := newRecordRepository(cfg, log)
	if err != nil {
		return err
	}

	limit := exportLimit
	if limit <= 0 {
		limit = cfg.TrendingLimit
	}

	records, err := repo.TopByCount(context.Background(), limit)
	if err != nil {
		return fmt.Errorf("failed to fetch trending terms: %w", err)
	}

	if format == export.FormatCSV {
		return export.WriteTrendingCSV(out, records)
	}
	return export.WriteTrendingJSON(out, records)
}

func exportHistory(cfg *config.Config, format export.Format, out io.Writer) error {
	db, err := newHistoryDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	repo := sqlite.NewSearchHistoryRepository(db)

	entries, err := repo.List(context.Background(), exportLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if format == export.FormatCSV {
		return export.WriteHistoryCSV(out, entries)
	}
	return export.WriteHistoryJSON(out, entries)
}
