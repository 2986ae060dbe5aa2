package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"movie-search/internal/config"
	"movie-search/internal/theme"
	"movie-search/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "reelscout",
	Short: "ReelScout - search movies and see what everyone else is searching",
	Long: `ReelScout is a terminal movie finder. It searches a movie metadata API as
you type and keeps popularity counters of search terms in a hosted document
store, so the trending list reflects what people actually look for.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// check if we need to run initial setup
		return checkAndRunSetup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// bare invocation opens the search TUI
		return runSearch(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// checks if initial setup is needed and runs it
func checkAndRunSetup() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// if theme not set then run initial setup
	if cfg.ThemeName == "" {
		fmt.Println()
		fmt.Println("Welcome to ReelScout! Let's set up your theme.")
		fmt.Println()

		model := tui.NewSetupModel()
		p := tea.NewProgram(model, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run setup: %w", err)
		}

		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config after setup: %w", err)
		}

		fmt.Println()
		if cfg.ThemeName != "" {
			fmt.Printf("✓ Theme configured: '%s'\n", cfg.ThemeName)
		} else {
			fmt.Println("Theme configuration complete!")
		}
		fmt.Println()
	}

	return nil
}

func loadStyles(cfg *config.Config) (*theme.Theme, *theme.Styles) {
	themeName := cfg.ThemeName
	if themeName == "" {
		themeName = "default"
	}

	themeObj, err := theme.GetTheme(themeName)
	if err != nil {
		themeObj = theme.GetDefaultTheme()
	}

	return themeObj, theme.NewStyles(themeObj)
}
