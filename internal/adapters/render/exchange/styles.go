package exchange

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	detail  lipgloss.Style
	elapsed lipgloss.Style
	notice  lipgloss.Style
	warning lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		elapsed: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
