package main

import "pascaltri/internal/triangle"

// ---------------------------------------------------------------------------
// Triangle geometry
// ---------------------------------------------------------------------------
//
// Each cell occupies a fixed-width slot on one terminal line, with a blank
// spacer line between triangle rows. Row r is centred by starting it half a
// slot further left than row r-1. The same numbers drive rendering and
// mouse hit-testing, so a click on a rendered slot always resolves to the
// cell drawn there.

const (
	cellSlotWidth = 6 // widest value is 126, plus breathing room
	rowHeight     = 2 // content line + spacer line
	triangleTop   = 3 // lines consumed by the header above the triangle
)

type cellLayout struct {
	size    int
	width   int
	centerX int
}

func computeLayout(size, width int) cellLayout {
	if width <= 0 {
		width = 80
	}
	return cellLayout{size: size, width: width, centerX: width / 2}
}

// rowStartX returns the x of the first slot in the given triangle row,
// clamped so narrow windows keep render and hit-test positions in agreement.
func (l cellLayout) rowStartX(row int) int {
	x := l.centerX - (row+1)*cellSlotWidth/2
	if x < 0 {
		x = 0
	}
	return x
}

// pos returns the top-left terminal coordinate of a cell's slot.
func (l cellLayout) pos(c triangle.Cell) (x, y int) {
	return l.rowStartX(c.Row) + c.Col*cellSlotWidth, triangleTop + c.Row*rowHeight
}

// cellAt maps a terminal coordinate to the cell drawn there. ok is false
// for clicks on spacer lines, the header, or outside the triangle.
func (l cellLayout) cellAt(x, y int) (triangle.Cell, bool) {
	rel := y - triangleTop
	if rel < 0 || rel%rowHeight != 0 {
		return triangle.None, false
	}
	row := rel / rowHeight
	if row >= l.size {
		return triangle.None, false
	}
	dx := x - l.rowStartX(row)
	if dx < 0 {
		return triangle.None, false
	}
	col := dx / cellSlotWidth
	if col > row {
		return triangle.None, false
	}
	return triangle.Cell{Row: row, Col: col}, true
}

// height returns the number of lines the triangle occupies, header included.
func (l cellLayout) height() int {
	return triangleTop + l.size*rowHeight
}
