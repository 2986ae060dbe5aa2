package theme

type Theme struct {
	Name string

	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string
	Info      string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// rating tiers
	RatingHigh string
	RatingMid  string
	RatingLow  string

	// UI element
	BorderColor  string
	SelectedBg   string
	SelectedFg   string
	HeaderBg     string
	HeaderFg     string
	HelpText     string
	SubtitleText string
	SpinnerColor string
	TrendHot     string
}
