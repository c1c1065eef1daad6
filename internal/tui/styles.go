package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	LabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	HelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237"))

	FocusedButtonStyle = ButtonStyle.
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("#7D56F4"))

	DisabledButtonStyle = ButtonStyle.Foreground(lipgloss.Color("240"))

	AlertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2).
			MarginTop(1)

	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("#04B575")).
			Padding(0, 1)
)
