// Package triangle models Pascal's triangle: cell coordinates, binomial
// values, and the random blank-cell selection a new game starts from.
package triangle

import (
	"math/big"
	"math/rand"
)

// Triangle size bounds. The host size control stays within these, and the
// model clamps anything outside them (e.g. from a hand-edited save file).
const (
	MinSize = 2
	MaxSize = 10
)

// Cell identifies one position in the triangle. Row and Col are 0-based,
// with 0 <= Col <= Row for valid cells.
type Cell struct {
	Row int
	Col int
}

// None is the sentinel for "no cell selected".
var None = Cell{Row: -1, Col: -1}

// Valid reports whether c exists in a triangle of the given size.
func (c Cell) Valid(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col <= c.Row
}

// IsEdge reports whether c lies on the triangle's outer diagonal.
func (c Cell) IsEdge() bool {
	return c.Col == 0 || c.Col == c.Row
}

// ClampSize forces size into [MinSize, MaxSize].
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// TotalCells returns the number of cells in a triangle of the given size,
// i.e. the size-th triangle number.
func TotalCells(size int) int {
	return size * (size + 1) / 2
}

// Value returns the binomial coefficient C(Row, Col), the number Pascal's
// triangle displays at that cell. Computed exactly via math/big so the
// intermediate arithmetic never overflows even if the size bounds are
// relaxed later.
func Value(c Cell) int64 {
	var z big.Int
	return z.Binomial(int64(c.Row), int64(c.Col)).Int64()
}

// GenerateBlanks picks the cells the player must fill in. The blank count
// is drawn uniformly from [1, TotalCells(size)], then that many cells are
// drawn uniformly with replacement and deduplicated. No top-up draw is made
// for duplicates, so the effective count is usually below the raw draw;
// the result is always non-empty and every member is valid for size.
func GenerateBlanks(size int, rng *rand.Rand) map[Cell]struct{} {
	numBlanks := 1 + rng.Intn(TotalCells(size))
	blanks := make(map[Cell]struct{}, numBlanks)
	for i := 0; i < numBlanks; i++ {
		row := rng.Intn(size)
		col := rng.Intn(row + 1)
		blanks[Cell{Row: row, Col: col}] = struct{}{}
	}
	return blanks
}
