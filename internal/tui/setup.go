package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movie-search/internal/config"
	"movie-search/internal/theme"
)

// SetupModel is the model for the first-run theme picker
type SetupModel struct {
	themes        []string
	selectedIndex int
	currentTheme  *theme.Theme
	width         int
	height        int
	quitting      bool
	confirmed     bool
}

func NewSetupModel() SetupModel {
	themes := theme.ListThemes()
	currentTheme, _ := theme.GetTheme(themes[0])

	return SetupModel{
		themes:        themes,
		selectedIndex: 0,
		currentTheme:  currentTheme,
		width:         100,
		height:        30,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.selectedIndex > 0 {
				m.selectedIndex--
				t, _ := theme.GetTheme(m.themes[m.selectedIndex])
				m.currentTheme = t
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.selectedIndex < len(m.themes)-1 {
				m.selectedIndex++
				t, _ := theme.GetTheme(m.themes[m.selectedIndex])
				m.currentTheme = t
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			selectedTheme := m.themes[m.selectedIndex]
			if err := config.UpdateTheme(selectedTheme); err != nil {
				// if saving fails, just continue
				fmt.Printf("Warning: failed to save theme: %v\n", err)
			}
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	if m.quitting {
		if m.confirmed {
			return ""
		}
		return "Setup cancelled.\n"
	}

	if m.width < 50 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	styles := theme.NewStyles(m.currentTheme)

	var list strings.Builder
	list.WriteString(styles.Title.Render("Pick a theme"))
	list.WriteString("\n\n")
	for i, name := range m.themes {
		if i == m.selectedIndex {
			list.WriteString(styles.DropdownSel.Render("> " + name))
		} else {
			list.WriteString(styles.DropdownItem.Render("  " + name))
		}
		list.WriteString("\n")
	}

	var preview strings.Builder
	preview.WriteString(styles.TUITitle.Render("  ReelScout  "))
	preview.WriteString("\n\n")
	preview.WriteString(styles.TrendingRank.Render("1.") + " " + styles.TrendingTerm.Render("batman") + " " + styles.TrendingCount.Render("(9 searches)"))
	preview.WriteString("\n")
	preview.WriteString(styles.RatingHigh.Render("8.5") + " " + styles.RatingMid.Render("6.1") + " " + styles.RatingLow.Render("3.2"))
	preview.WriteString("\n\n")
	preview.WriteString(styles.ErrorBanner.Render(errFetchMessage))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(24).Render(list.String()),
		styles.SearchBox.Render(preview.String()),
	)

	help := styles.TUIHelp.Render("↑/↓ choose · enter confirm · q cancel")

	return body + "\n\n" + help + "\n"
}
