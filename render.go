package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"pascaltri/internal/hint"
	"pascaltri/internal/triangle"
)

func (m model) View() string {
	body := strings.Join(m.renderBody(), "\n")
	statusLine := m.renderStatus()
	footer := m.renderFooter()

	if m.showVictory {
		return m.composeVictory(body, statusLine, footer)
	}
	return m.placeWithFooter(body, statusLine, footer)
}

// ---------------------------------------------------------------------------
// Triangle
// ---------------------------------------------------------------------------

// renderBody returns the header and triangle as positioned lines. Line
// indices match the layout's coordinates so mouse hit-testing agrees with
// what is on screen.
func (m model) renderBody() []string {
	lines := make([]string, 0, m.layout.height())
	lines = append(lines, m.renderHeader()...)

	for row := 0; row < m.game.Size(); row++ {
		startX := m.layout.rowStartX(row)
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", startX))
		for col := 0; col <= row; col++ {
			b.WriteString(m.renderCell(triangle.Cell{Row: row, Col: col}))
		}
		lines = append(lines, b.String(), "")
	}
	// Drop the trailing spacer line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func (m model) renderHeader() []string {
	hints := "hints off"
	if m.game.Hints() {
		hints = hintsOnStyle.Render("hints on")
	}
	info := fmt.Sprintf("size %d · %d left · %s", m.game.Size(), m.game.BlankCount(), hints)
	title := titleStyle.Render(appName)
	if m.width > 0 {
		title = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)
		info = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, info)
	}
	return []string{title, info, ""}
}

// renderCell paints one slot: the value for revealed cells, "?" for blanks,
// and the in-progress answer for the selected blank. The background follows
// the hint category.
func (m model) renderCell(c triangle.Cell) string {
	selected := m.game.Selected()

	var text string
	var style lipgloss.Style
	switch {
	case !m.game.IsBlank(c):
		text = strconv.FormatInt(triangle.Value(c), 10)
		style = cellValueStyle
	case c != selected:
		text = "?"
		style = cellBlankStyle
	default:
		text = m.game.Pending()
		style = cellPendingStyle
	}

	switch hint.Categorize(selected, c, m.game.Hints()) {
	case hint.Selected:
		style = cellSelectedStyle
	case hint.Edge:
		style = cellEdgeStyle
	case hint.Parent:
		style = cellParentStyle
	}

	return style.Width(cellSlotWidth).Align(lipgloss.Center).Render(text)
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (m model) renderStatus() string {
	style := statusBarStyle
	if m.statusErr {
		style = errorBarStyle
	}
	if m.width == 0 {
		return style.Render(m.status)
	}
	flat := strings.ReplaceAll(m.status, "\n", " ")
	return style.Render(padRight(flat, m.width-style.GetHorizontalFrameSize()))
}

func (m model) renderFooter() string {
	var bindings []key.Binding
	if m.showVictory {
		bindings = m.victoryKeys.ShortHelp()
	} else {
		bindings = m.keys.ShortHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	text := strings.Join(parts, "  ")
	if m.width == 0 {
		return footerStyle.Render(text)
	}
	return footerStyle.Render(padRight(text, m.width-footerStyle.GetHorizontalFrameSize()))
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}

func (m model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}

// ---------------------------------------------------------------------------
// Victory modal
// ---------------------------------------------------------------------------

func (m model) victoryView() string {
	lines := []string{
		titleStyle.Render("You've won!"),
		"",
		"Well done! You've completed the",
		"Pascal Triangle. Play again?",
	}
	return strings.Join(lines, "\n")
}

func (m model) composeVictory(body, statusLine, footer string) string {
	baseView := m.placeWithFooter(body, statusLine, footer)
	modal := modalStyle.Render(m.victoryView())
	if m.height == 0 || m.width == 0 {
		return baseView + "\n\n" + modal
	}
	lines := splitLines(modal)
	modalWidth := maxLineWidth(lines)
	modalHeight := len(lines)

	targetHeight := m.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	x := (m.width - modalWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (targetHeight - modalHeight) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(baseView, modal, x, y, m.width, targetHeight)
}
