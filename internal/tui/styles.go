package tui

import "github.com/charmbracelet/lipgloss"

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3DBE8B"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#C43B3D"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statsStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	cheerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))

	titleStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0")).Bold(true)
	titleAccentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3DBE8B")).Bold(true)
	optionStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0"))
	optionSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	hintStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	focusedBorderStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#3DBE8B"))
	blurredBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)
