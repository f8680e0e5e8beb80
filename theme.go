package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorCrust    lipgloss.Color = "#11111b"
)

// Semantic aliases. The highlight colours follow the original game:
// green for the selection, blue for edge hints, yellow for parent hints.
const (
	colorSelected   = colorGreen
	colorEdgeHint   = colorBlue
	colorParentHint = colorYellow
	colorPendingFg  = colorRed
	colorBlankFg    = colorOverlay1
	colorError      = colorRed
	colorAccent     = colorLavender
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	statusBarStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 2)
	errorBarStyle  = lipgloss.NewStyle().Foreground(colorCrust).Background(colorError).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 2)
	modalStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(1, 2)

	cellValueStyle    = lipgloss.NewStyle().Foreground(colorText)
	cellBlankStyle    = lipgloss.NewStyle().Foreground(colorBlankFg)
	cellPendingStyle  = lipgloss.NewStyle().Foreground(colorPendingFg).Bold(true)
	cellSelectedStyle = lipgloss.NewStyle().Foreground(colorCrust).Background(colorSelected).Bold(true)
	cellEdgeStyle     = lipgloss.NewStyle().Foreground(colorCrust).Background(colorEdgeHint)
	cellParentStyle   = lipgloss.NewStyle().Foreground(colorCrust).Background(colorParentHint)

	hintsOnStyle = lipgloss.NewStyle().Foreground(colorTeal)
)
