package theme

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style

	// rating tiers
	RatingHigh lipgloss.Style
	RatingMid  lipgloss.Style
	RatingLow  lipgloss.Style

	// tui
	TUITitle      lipgloss.Style
	TUISubtitle   lipgloss.Style
	TUIHelp       lipgloss.Style
	SearchBox     lipgloss.Style
	ErrorBanner   lipgloss.Style
	TrendingPanel lipgloss.Style
	TrendingRank  lipgloss.Style
	TrendingTerm  lipgloss.Style
	TrendingCount lipgloss.Style
	Dropdown      lipgloss.Style
	DropdownItem  lipgloss.Style
	DropdownSel   lipgloss.Style
	Spinner       lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)),

		RatingHigh: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.RatingHigh)),

		RatingMid: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.RatingMid)),

		RatingLow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.RatingLow)),

		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.Primary)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(0, 1),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true).
			Padding(1, 2),

		TrendingPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.TrendHot)).
			Padding(0, 1),

		TrendingRank: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.TrendHot)),

		TrendingTerm: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)),

		TrendingCount: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.TextMuted)).
			Padding(0, 1),

		DropdownItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		DropdownSel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)),

		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SpinnerColor)),
	}
}
