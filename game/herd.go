package game

import (
	"strings"

	"dragonchess/grid"
)

const noSheep = 0xFF

// herd holds at most one sheep per column: byte i is the row of the sheep in
// column i, or noSheep. Strings are immutable, so updates never alias.
type herd string

func newHerd(width int) herd {
	return herd(strings.Repeat(string([]byte{noSheep}), width))
}

func (h herd) row(col int) (int, bool) {
	r := h[col]
	return int(r), r != noSheep
}

func (h herd) with(cell grid.Cell) herd {
	b := []byte(h)
	b[cell.Col] = byte(cell.Row)
	return herd(b)
}

func (h herd) without(col int) herd {
	b := []byte(h)
	b[col] = noSheep
	return herd(b)
}

func (h herd) has(cell grid.Cell) bool {
	if cell.Col < 0 || cell.Col >= len(h) {
		return false
	}
	row, ok := h.row(cell.Col)
	return ok && row == cell.Row
}

func (h herd) count() int {
	n := 0
	for i := 0; i < len(h); i++ {
		if h[i] != noSheep {
			n++
		}
	}
	return n
}

// cells lists the sheep in column order.
func (h herd) cells() []grid.Cell {
	cells := make([]grid.Cell, 0, len(h))
	for col := 0; col < len(h); col++ {
		if row, ok := h.row(col); ok {
			cells = append(cells, grid.Cell{Row: row, Col: col})
		}
	}
	return cells
}
