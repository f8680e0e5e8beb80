// Package hint classifies cells for highlight rendering relative to the
// current selection.
package hint

import "pascaltri/internal/triangle"

// Category is the highlight a cell should receive.
type Category int

const (
	// None means no highlight.
	None Category = iota
	// Selected marks the currently selected cell.
	Selected
	// Edge marks outer-diagonal cells when the selection is itself on an edge.
	Edge
	// Parent marks the two cells whose sum produces the selected cell's value.
	Parent
)

func (c Category) String() string {
	switch c {
	case Selected:
		return "selected"
	case Edge:
		return "edge"
	case Parent:
		return "parent"
	default:
		return "none"
	}
}

// Categorize returns the highlight for candidate given the current selection.
// Checks run in priority order — selected, edge, parent — and the first match
// wins, so a cell meeting both the edge and parent conditions is Edge.
// Edge and Parent require hints to be enabled; Edge additionally requires
// that a cell is selected and that the selection is on an edge.
func Categorize(selected, candidate triangle.Cell, hintsEnabled bool) Category {
	if candidate == selected {
		return Selected
	}
	if !hintsEnabled {
		return None
	}
	if selected != triangle.None && selected.IsEdge() && candidate.IsEdge() {
		return Edge
	}
	if candidate.Row == selected.Row-1 &&
		(candidate.Col == selected.Col-1 || candidate.Col == selected.Col) {
		return Parent
	}
	return None
}
