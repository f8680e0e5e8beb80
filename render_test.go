package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"pascaltri/internal/triangle"
)

func plainLines(s string) []string {
	return splitLines(ansi.Strip(s))
}

func TestViewShowsValuesAndBlanks(t *testing.T) {
	m := newTestModel(t)
	m = setBlanks(t, m, 5, triangle.Cell{Row: 3, Col: 1})

	out := ansi.Strip(m.View())
	if !strings.Contains(out, appName) {
		t.Fatal("view missing title")
	}
	if !strings.Contains(out, "?") {
		t.Fatal("blank cell should render as ?")
	}
	// Revealed values from row 4: 1 4 6 4 1.
	if !strings.Contains(out, "6") {
		t.Fatal("view missing revealed value 6")
	}
}

func TestViewCellPositionsMatchLayout(t *testing.T) {
	m := newTestModel(t)
	m = setBlanks(t, m, 5, triangle.Cell{Row: 3, Col: 1})

	lines := plainLines(m.View())
	// (4,2) has value 6; its slot must contain "6" on the layout's line.
	x, y := m.layout.pos(triangle.Cell{Row: 4, Col: 2})
	if y >= len(lines) {
		t.Fatalf("view has %d lines, cell line is %d", len(lines), y)
	}
	slot := lines[y][x : x+cellSlotWidth]
	if !strings.Contains(slot, "6") {
		t.Fatalf("slot at (%d,%d) = %q, want it to contain 6", x, y, slot)
	}

	// The blank's slot shows the placeholder.
	x, y = m.layout.pos(triangle.Cell{Row: 3, Col: 1})
	slot = lines[y][x : x+cellSlotWidth]
	if !strings.Contains(slot, "?") {
		t.Fatalf("blank slot = %q, want it to contain ?", slot)
	}
}

func TestViewShowsPendingTextInSelectedBlank(t *testing.T) {
	m := newTestModel(t)
	m = setBlanks(t, m, 5, triangle.Cell{Row: 3, Col: 1})
	m.game.SelectCell(triangle.Cell{Row: 3, Col: 1})
	m.game.TypeDigit('1')

	lines := plainLines(m.View())
	x, y := m.layout.pos(triangle.Cell{Row: 3, Col: 1})
	slot := lines[y][x : x+cellSlotWidth]
	if !strings.Contains(slot, "1") || strings.Contains(slot, "?") {
		t.Fatalf("selected blank slot = %q, want the pending text, not ?", slot)
	}
}

func TestViewHeaderShowsProgress(t *testing.T) {
	m := newTestModel(t)
	m = setBlanks(t, m, 5, triangle.Cell{Row: 3, Col: 1}, triangle.Cell{Row: 4, Col: 0})

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "size 5") {
		t.Fatal("header missing size")
	}
	if !strings.Contains(out, "2 left") {
		t.Fatal("header missing blanks-left count")
	}
}

func TestVictoryModalOverlaysView(t *testing.T) {
	m := newTestModel(t)
	m = setBlanks(t, m, 2, triangle.Cell{Row: 1, Col: 0})
	m.game.SelectCell(triangle.Cell{Row: 1, Col: 0})
	m = applyMsg(t, m, keyRunes("1"))

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "You've won!") {
		t.Fatal("victory modal missing")
	}
	if !strings.Contains(out, "Play again?") {
		t.Fatal("victory modal missing prompt")
	}
}

func TestStatusBarShowsErrors(t *testing.T) {
	m := newTestModel(t)
	m.setError("Load failed: boom")

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Load failed: boom") {
		t.Fatal("status bar should carry the error text")
	}
}

func TestFooterListsBindings(t *testing.T) {
	m := newTestModel(t)
	out := ansi.Strip(m.View())
	for _, want := range []string{"new game", "hints", "save", "load", "quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q", want)
		}
	}
}
