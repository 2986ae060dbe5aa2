package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"movie-search/internal/config"
	"movie-search/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "List available themes or switch to one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runThemeSet(cmd, args)
		}
		return runThemeList(cmd, args)
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Set the active theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeSet,
}

func init() {
	themeCmd.AddCommand(themeSetCmd)
	rootCmd.AddCommand(themeCmd)
}

func runThemeList(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	_, styles := loadStyles(cfg)

	fmt.Println()
	fmt.Println(styles.Title.Render("Available themes"))
	fmt.Println()

	for _, name := range theme.ListThemes() {
		marker := "  "
		if name == cfg.ThemeName {
			marker = styles.Success.Render("✓ ")
		}
		fmt.Printf("  %s%s\n", marker, name)
	}
	fmt.Println()

	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !theme.ThemeExists(name) {
		return fmt.Errorf("unknown theme %q (run 'reelscout theme' to list themes)", name)
	}

	if err := config.UpdateTheme(name); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Printf("✓ Theme set to '%s'\n", name)
	return nil
}
