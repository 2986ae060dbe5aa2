package tui

import (
	"fmt"
	"strings"

	"movie-search/internal/display"
)

// renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.TUITitle.Render("  ReelScout  "))
	b.WriteString("  ")
	b.WriteString(m.styles.TUISubtitle.Render("Find movies you'll enjoy without the hassle"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.SearchBox.Render(m.searchInput.View()))
	b.WriteString("\n")

	if m.dropdown.active {
		b.WriteString(m.renderDropdown())
		b.WriteString("\n")
	}

	if m.showTrending && len(m.trending) > 0 {
		b.WriteString(m.renderTrending())
		b.WriteString("\n")
	}

	switch m.state {
	case stateLoading:
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(" Searching...")
		b.WriteString("\n")
	case stateError:
		b.WriteString(m.styles.ErrorBanner.Render(errFetchMessage))
		b.WriteString("\n")
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(m.renderStatusBar())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderTrending() string {
	var b strings.Builder

	b.WriteString(m.styles.TrendingRank.Render("Trending searches"))
	b.WriteString("\n")

	for i, rec := range m.trending {
		line := fmt.Sprintf("%s %s %s",
			m.styles.TrendingRank.Render(fmt.Sprintf("%d.", i+1)),
			m.styles.TrendingTerm.Render(display.Truncate(rec.SearchTerm, 32)),
			m.styles.TrendingCount.Render("("+display.FormatCount(rec.Count)+")"),
		)
		b.WriteString(line)
		if i < len(m.trending)-1 {
			b.WriteString("\n")
		}
	}

	return m.styles.TrendingPanel.Render(b.String())
}

func (m Model) renderDropdown() string {
	var b strings.Builder

	for i, entry := range m.dropdown.matches {
		text := entry.GetDisplayText()
		if i == m.dropdown.cursor {
			b.WriteString(m.styles.DropdownSel.Render("> " + text))
		} else {
			b.WriteString(m.styles.DropdownItem.Render("  " + text))
		}
		if i < len(m.dropdown.matches)-1 {
			b.WriteString("\n")
		}
	}

	return m.styles.Dropdown.Render(b.String())
}

func (m Model) renderStatusBar() string {
	if m.state != stateSuccess {
		return ""
	}

	if m.activeTerm == "" {
		return m.styles.TUISubtitle.Render(fmt.Sprintf("Popular now · %d movies", len(m.movies)))
	}
	return m.styles.TUISubtitle.Render(fmt.Sprintf("%d results for %q", len(m.movies), m.activeTerm))
}

func (m Model) renderHelp() string {
	entries := []string{
		"type to search",
		"↑/↓ scroll",
		"ctrl+r recent",
		"ctrl+t trending",
		"esc clear",
		"ctrl+c quit",
	}
	return m.styles.TUIHelp.Render(strings.Join(entries, " · "))
}
