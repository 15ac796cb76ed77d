package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	sections := []string{
		cardTitleStyle.Render("Help"),
		renderKeys("Navigation", [][2]string{
			{"1", "Workout list"},
			{"2", "Sync"},
			{"?", "This help"},
			{"esc", "Back"},
			{"q", "Quit"},
		}),
		renderKeys("Workout list", [][2]string{
			{"up/down, j/k", "Move selection"},
			{"enter", "Open workout detail"},
			{"r", "Reload from cache"},
		}),
		renderKeys("Detail", [][2]string{
			{"up/down", "Scroll"},
			{"esc", "Back to list"},
		}),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderKeys(title string, keys [][2]string) string {
	out := "\n" + cardTitleStyle.Render(title) + "\n"
	for _, k := range keys {
		out += fmt.Sprintf("  %s %s\n",
			helpKeyStyle.Render(fmt.Sprintf("%-14s", k[0])),
			helpDescStyle.Render(k[1]))
	}
	return out
}
