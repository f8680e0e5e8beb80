// Package save serializes a game snapshot to a versioned TOML blob and back.
//
// The document carries the five fields of the save contract — size, blanks,
// selection, pending, hints — plus a format version and an informational
// game id. Writers may append fields in future revisions; decoding reads
// only the known fields and ignores the rest, so older readers keep working.
// All five contract fields are required: a document missing any of them is
// rejected with a DecodeError.
package save

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"pascaltri/internal/game"
	"pascaltri/internal/triangle"
)

// Version is the current save format revision.
const Version = 1

// requiredFields are the top-level keys every save document must carry.
var requiredFields = []string{"size", "blanks", "selection", "pending", "hints"}

// DecodeError reports a save blob that could not be decoded. When one is
// returned the caller must leave its in-memory state completely untouched.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode save: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode save: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// record is the on-disk document layout.
type record struct {
	Version   int     `toml:"version"`
	Size      int     `toml:"size"`
	Blanks    [][]int `toml:"blanks"`
	Selection []int   `toml:"selection"` // [-1, -1] when nothing is selected
	Pending   string  `toml:"pending"`
	Hints     bool    `toml:"hints"`
	GameID    string  `toml:"game_id"`
}

// Encode serializes a snapshot.
func Encode(sn game.Snapshot) ([]byte, error) {
	rec := record{
		Version:   Version,
		Size:      sn.Size,
		Blanks:    make([][]int, 0, len(sn.Blanks)),
		Selection: []int{sn.Selected.Row, sn.Selected.Col},
		Pending:   sn.Pending,
		Hints:     sn.Hints,
		GameID:    sn.GameID,
	}
	for _, c := range sn.Blanks {
		rec.Blanks = append(rec.Blanks, []int{c.Row, c.Col})
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(rec); err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a save blob into a snapshot. Unknown keys are ignored;
// missing contract fields or unparseable input yield a *DecodeError.
func Decode(data []byte) (game.Snapshot, error) {
	var rec record
	md, err := toml.Decode(string(data), &rec)
	if err != nil {
		return game.Snapshot{}, &DecodeError{Reason: "malformed document", Err: err}
	}
	for _, field := range requiredFields {
		if !md.IsDefined(field) {
			return game.Snapshot{}, &DecodeError{Reason: fmt.Sprintf("missing field %q", field)}
		}
	}
	// rec.Version is deliberately not checked: newer revisions only append
	// fields, so reading the known ones is always safe.

	if len(rec.Selection) != 2 {
		return game.Snapshot{}, &DecodeError{Reason: "selection is not a (row, column) pair"}
	}
	sn := game.Snapshot{
		Size:     rec.Size,
		Selected: triangle.Cell{Row: rec.Selection[0], Col: rec.Selection[1]},
		Pending:  rec.Pending,
		Hints:    rec.Hints,
		GameID:   rec.GameID,
	}
	if rec.Selection[0] < 0 || rec.Selection[1] < 0 {
		sn.Selected = triangle.None
	}
	for i, pair := range rec.Blanks {
		if len(pair) != 2 {
			return game.Snapshot{}, &DecodeError{Reason: fmt.Sprintf("blanks[%d] is not a (row, column) pair", i)}
		}
		sn.Blanks = append(sn.Blanks, triangle.Cell{Row: pair[0], Col: pair[1]})
	}
	return sn, nil
}
