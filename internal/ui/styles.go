package ui

import "github.com/charmbracelet/lipgloss"

// Lipgloss Styles
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	NoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	FaintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
