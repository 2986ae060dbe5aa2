package theme

func GetPredefinedThemes() map[string]*Theme {
	return map[string]*Theme{
		"default": DefaultTheme(),
		"dark":    DarkTheme(),
		"dracula": DraculaTheme(),
		"nord":    NordTheme(),
	}
}

func GetThemeNames() []string {
	return []string{
		"default",
		"dark",
		"dracula",
		"nord",
	}
}

func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		Primary:   "#7D56F4",
		Secondary: "#8aa4eb",
		Success:   "#04B575",
		Error:     "#FF5555",
		Warning:   "#FF8800",
		Info:      "#0088FF",

		TextPrimary:   "#FAFAFA",
		TextSecondary: "#888888",
		TextMuted:     "#6C6C6C",

		RatingHigh: "#04B575",
		RatingMid:  "#FFD700",
		RatingLow:  "#FF5555",

		BorderColor:  "#7D56F4",
		SelectedBg:   "#7D56F4",
		SelectedFg:   "#FAFAFA",
		HeaderBg:     "#7D56F4",
		HeaderFg:     "#FAFAFA",
		HelpText:     "#626262",
		SubtitleText: "#8aa4eb",
		SpinnerColor: "#7D56F4",
		TrendHot:     "#FF8800",
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",

		Primary:   "#BB9AF7",
		Secondary: "#7AA2F7",
		Success:   "#9ECE6A",
		Error:     "#F7768E",
		Warning:   "#E0AF68",
		Info:      "#7DCFFF",

		TextPrimary:   "#C0CAF5",
		TextSecondary: "#565F89",
		TextMuted:     "#414868",

		RatingHigh: "#9ECE6A",
		RatingMid:  "#E0AF68",
		RatingLow:  "#F7768E",

		BorderColor:  "#BB9AF7",
		SelectedBg:   "#364A82",
		SelectedFg:   "#C0CAF5",
		HeaderBg:     "#364A82",
		HeaderFg:     "#C0CAF5",
		HelpText:     "#565F89",
		SubtitleText: "#7AA2F7",
		SpinnerColor: "#BB9AF7",
		TrendHot:     "#E0AF68",
	}
}

func DraculaTheme() *Theme {
	return &Theme{
		Name: "dracula",

		Primary:   "#BD93F9",
		Secondary: "#6272A4",
		Success:   "#50FA7B",
		Error:     "#FF5555",
		Warning:   "#FFB86C",
		Info:      "#8BE9FD",

		TextPrimary:   "#F8F8F2",
		TextSecondary: "#6272A4",
		TextMuted:     "#44475A",

		RatingHigh: "#50FA7B",
		RatingMid:  "#F1FA8C",
		RatingLow:  "#FF5555",

		BorderColor:  "#BD93F9",
		SelectedBg:   "#44475A",
		SelectedFg:   "#F8F8F2",
		HeaderBg:     "#44475A",
		HeaderFg:     "#BD93F9",
		HelpText:     "#6272A4",
		SubtitleText: "#8BE9FD",
		SpinnerColor: "#FF79C6",
		TrendHot:     "#FFB86C",
	}
}

func NordTheme() *Theme {
	return &Theme{
		Name: "nord",

		Primary:   "#88C0D0",
		Secondary: "#81A1C1",
		Success:   "#A3BE8C",
		Error:     "#BF616A",
		Warning:   "#EBCB8B",
		Info:      "#5E81AC",

		TextPrimary:   "#ECEFF4",
		TextSecondary: "#D8DEE9",
		TextMuted:     "#4C566A",

		RatingHigh: "#A3BE8C",
		RatingMid:  "#EBCB8B",
		RatingLow:  "#BF616A",

		BorderColor:  "#88C0D0",
		SelectedBg:   "#434C5E",
		SelectedFg:   "#ECEFF4",
		HeaderBg:     "#434C5E",
		HeaderFg:     "#88C0D0",
		HelpText:     "#4C566A",
		SubtitleText: "#81A1C1",
		SpinnerColor: "#88C0D0",
		TrendHot:     "#EBCB8B",
	}
}
