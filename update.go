package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pascaltri/internal/game"
	"pascaltri/internal/save"
	"pascaltri/internal/triangle"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil
	case saveDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Save failed: %v", msg.err))
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Game saved to %s.", msg.path))
		return m, nil
	case loadDoneMsg:
		// On any load error the in-memory game stays exactly as it was.
		if msg.err != nil {
			m.setError(fmt.Sprintf("Load failed: %v", msg.err))
			return m, nil
		}
		m.game.Restore(msg.snap)
		m.showVictory = false
		m.relayout()
		m.setStatus(fmt.Sprintf("Game loaded from %s.", msg.path))
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if m.showVictory {
			return m.updateVictory(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Input handling
// ---------------------------------------------------------------------------

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showVictory {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if cell, ok := m.layout.cellAt(msg.X, msg.Y); ok {
		m.game.SelectCell(cell)
	} else {
		// A click that hits no cell clears the selection.
		m.game.SelectCell(triangle.None)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		if won := m.game.TypeDigit(s[0]); won {
			m.showVictory = true
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Backspace):
		m.game.Backspace()
		return m, nil
	case key.Matches(msg, m.keys.NewGame):
		m.game.StartGame(m.game.Size())
		m.setStatus("New game.")
		return m, nil
	case key.Matches(msg, m.keys.Hints):
		m.game.SetHints(!m.game.Hints())
		if m.game.Hints() {
			m.setStatus("Hints on.")
		} else {
			m.setStatus("Hints off.")
		}
		return m, nil
	case key.Matches(msg, m.keys.Bigger):
		m.game.Resize(m.game.Size() + 1)
		m.relayout()
		return m, nil
	case key.Matches(msg, m.keys.Smaller):
		m.game.Resize(m.game.Size() - 1)
		m.relayout()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m, saveGameCmd(m.game.Snapshot(), m.cfg.Save.Path)
	case key.Matches(msg, m.keys.Load):
		return m, loadGameCmd(m.cfg.Save.Path)
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	// Anything else is deliberately ignored, like the original game.
	return m, nil
}

func (m model) updateVictory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.NewGame):
		m.showVictory = false
		m.game.StartGame(m.game.Size())
		m.setStatus("New game.")
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Persistence commands
// ---------------------------------------------------------------------------

func saveGameCmd(sn game.Snapshot, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := save.Encode(sn)
		if err == nil {
			err = os.MkdirAll(filepath.Dir(path), 0o755)
		}
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
		return saveDoneMsg{path: path, err: err}
	}
}

func loadGameCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return loadDoneMsg{path: path, err: err}
		}
		snap, err := save.Decode(data)
		return loadDoneMsg{snap: snap, path: path, err: err}
	}
}
