// Package game holds the puzzle state machine: which cells are blank, which
// cell is selected, the digits typed so far, and the transitions the host UI
// drives in response to input events.
package game

import (
	"math/rand"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"pascaltri/internal/triangle"
)

// Answers are capped at two typed digits, matching the original game.
const maxPendingDigits = 2

// State is a single game session. It has no internal concurrency; the host
// owns it and mutates it through the transition methods one event at a time.
type State struct {
	rng *rand.Rand

	size     int
	blanks   map[triangle.Cell]struct{}
	selected triangle.Cell
	pending  string
	hints    bool
	gameID   string
}

// New creates a session and starts its first game.
func New(size int, hints bool, rng *rand.Rand) *State {
	s := &State{rng: rng, hints: hints, selected: triangle.None}
	s.StartGame(size)
	return s
}

// StartGame begins a fresh game: new blank set, no selection, no pending
// text. The hints toggle is global and deliberately survives.
func (s *State) StartGame(size int) {
	s.size = triangle.ClampSize(size)
	s.blanks = triangle.GenerateBlanks(s.size, s.rng)
	s.selected = triangle.None
	s.pending = ""
	s.gameID = uuid.NewString()
}

// SelectCell changes the selection and clears any pending text. Selecting
// the already-selected cell is a no-op, so pending text survives. Pass
// triangle.None to clear the selection (a click that hits no cell).
func (s *State) SelectCell(c triangle.Cell) {
	if c == s.selected {
		return
	}
	s.selected = c
	s.pending = ""
}

// TypeDigit appends a decimal digit to the pending text and immediately
// checks the answer. The pending text is string concatenation, not numeric
// accumulation: "0" then "5" yields "05". Digits beyond the cap are dropped
// but the answer is still checked. Reports whether this keystroke won the
// game.
func (s *State) TypeDigit(d byte) bool {
	if s.selected == triangle.None {
		return false
	}
	if d < '0' || d > '9' {
		return false
	}
	if len(s.pending) < maxPendingDigits {
		s.pending += string(d)
	}
	return s.CheckAnswer()
}

// Backspace removes the last pending character. It never triggers an
// answer check.
func (s *State) Backspace() {
	if s.pending != "" {
		s.pending = s.pending[:len(s.pending)-1]
	}
}

// CheckAnswer compares the pending text against the selected cell's value.
// On a match the cell is revealed (removed from the blank set) and the
// selection clears. Comparison is numeric, so "02" matches 2. Empty or
// unparseable pending text is simply not-yet-correct. Selecting an
// already-revealed cell and typing its value changes nothing, since the
// blank set no longer contains it. Reports whether the game is now won.
func (s *State) CheckAnswer() bool {
	if _, blank := s.blanks[s.selected]; !blank {
		return false
	}
	n, err := strconv.Atoi(s.pending)
	if err != nil {
		return false
	}
	if int64(n) != triangle.Value(s.selected) {
		return false
	}
	delete(s.blanks, s.selected)
	s.selected = triangle.None
	s.pending = ""
	return s.Won()
}

// Won reports whether every blank cell has been filled in.
func (s *State) Won() bool {
	return len(s.blanks) == 0
}

// SetHints toggles hint highlighting. Independent of game progress.
func (s *State) SetHints(on bool) {
	s.hints = on
}

// Resize starts a new game at the given size. A no-op when the (clamped)
// size is unchanged.
func (s *State) Resize(size int) {
	size = triangle.ClampSize(size)
	if size == s.size {
		return
	}
	s.StartGame(size)
}

func (s *State) Size() int               { return s.size }
func (s *State) Selected() triangle.Cell { return s.selected }
func (s *State) Pending() string         { return s.pending }
func (s *State) Hints() bool             { return s.hints }
func (s *State) GameID() string          { return s.gameID }

// IsBlank reports whether c still needs to be filled in.
func (s *State) IsBlank(c triangle.Cell) bool {
	_, ok := s.blanks[c]
	return ok
}

// BlankCount returns the number of cells left to fill.
func (s *State) BlankCount() int {
	return len(s.blanks)
}

// Blanks returns the blank cells sorted by row then column.
func (s *State) Blanks() []triangle.Cell {
	out := make([]triangle.Cell, 0, len(s.blanks))
	for c := range s.blanks {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
