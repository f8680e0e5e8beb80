package main

import (
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"

	"pascaltri/internal/config"
	"pascaltri/internal/game"
)

const appName = "Pascaltri"

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type saveDoneMsg struct {
	path string
	err  error
}

type loadDoneMsg struct {
	snap game.Snapshot
	path string
	err  error
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	game        *game.State
	cfg         config.Config
	keys        keyMap
	victoryKeys victoryKeyMap
	layout      cellLayout
	width       int
	height      int
	status      string
	statusErr   bool
	showVictory bool
}

func newModel(cfg config.Config, rng *rand.Rand) model {
	g := game.New(cfg.Game.DefaultSize, cfg.Game.Hints, rng)
	keys := newKeyMap()
	return model{
		game:        g,
		cfg:         cfg,
		keys:        keys,
		victoryKeys: victoryKeyMap{keyMap: keys},
		layout:      computeLayout(g.Size(), 0),
		status:      "Click a ? cell and type its value. Press h for hints.",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *model) relayout() {
	m.layout = computeLayout(m.game.Size(), m.width)
}
