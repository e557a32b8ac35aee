package termhost

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used to draw panels.
type Styles struct {
	Panel       lipgloss.Style
	PanelHeader lipgloss.Style
	Alert       lipgloss.Style
	Status      lipgloss.Style
	Muted       lipgloss.Style
}

// DefaultStyles returns the standard panel styles.
func DefaultStyles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		PanelHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
		Alert: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("161")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Muted:  lipgloss.NewStyle().Faint(true),
	}
}
