package game

import (
	"github.com/google/uuid"

	"pascaltri/internal/triangle"
)

// Snapshot is the persisted view of a session: the five fields of the save
// contract plus the informational game id.
type Snapshot struct {
	Size     int
	Blanks   []triangle.Cell
	Selected triangle.Cell
	Pending  string
	Hints    bool
	GameID   string
}

// Snapshot captures the current session for saving.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Size:     s.size,
		Blanks:   s.Blanks(),
		Selected: s.selected,
		Pending:  s.pending,
		Hints:    s.hints,
		GameID:   s.gameID,
	}
}

// Restore applies a decoded snapshot. The size is applied as a raw resize:
// the blank set comes from the snapshot and is never regenerated. Blank
// cells that fall outside the clamped size are dropped, since they could
// never be rendered or filled; an out-of-range selection is cleared the
// same way.
func (s *State) Restore(sn Snapshot) {
	s.size = triangle.ClampSize(sn.Size)
	s.hints = sn.Hints

	s.blanks = make(map[triangle.Cell]struct{}, len(sn.Blanks))
	for _, c := range sn.Blanks {
		if c.Valid(s.size) {
			s.blanks[c] = struct{}{}
		}
	}

	s.selected = triangle.None
	if sn.Selected.Valid(s.size) {
		s.selected = sn.Selected
	}
	s.pending = sn.Pending

	s.gameID = sn.GameID
	if s.gameID == "" {
		s.gameID = uuid.NewString()
	}
}
