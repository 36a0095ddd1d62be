package game

import (
	"fmt"

	"dragonchess/grid"
)

// Terrain of a single cell. Hideouts are fixed for the whole game.
type Terrain int

const (
	Plain Terrain = iota
	Hideout
)

// maxHeight keeps every row index representable in a herd byte.
const maxHeight = noSheep - 1

// Board is the static part of a game, shared read-only by every state.
type Board struct {
	Width  int
	Height int

	terrain []Terrain // row-major
	// safeFrom[col] is the smallest row r such that rows r..Height-1 of col
	// are all hideouts (Height when the bottom cell is plain)
	safeFrom   []int
	exhaustive bool
}

// NewBoard creates a board with the given hideout cells.
func NewBoard(width, height int, hideouts []grid.Cell) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board must be non-empty, got %dx%d", ErrInvalidBoard, width, height)
	}
	if height > maxHeight {
		return nil, fmt.Errorf("%w: board height %d exceeds %d", ErrInvalidBoard, height, maxHeight)
	}

	b := &Board{
		Width:    width,
		Height:   height,
		terrain:  make([]Terrain, width*height),
		safeFrom: make([]int, width),
	}
	for _, cell := range hideouts {
		if !cell.InBounds(width, height) {
			return nil, fmt.Errorf("%w: hideout %v is off the board", ErrInvalidBoard, cell)
		}
		b.terrain[b.index(cell)] = Hideout
	}

	for col := 0; col < width; col++ {
		row := height
		for row > 0 && b.terrain[b.index(grid.Cell{Row: row - 1, Col: col})] == Hideout {
			row--
		}
		b.safeFrom[col] = row
	}
	return b, nil
}

func (b *Board) index(c grid.Cell) int {
	return c.Row*b.Width + c.Col
}

// InBounds checks if a cell lies on the board.
func (b *Board) InBounds(c grid.Cell) bool {
	return c.InBounds(b.Width, b.Height)
}

// Terrain returns the terrain of an on-board cell. Off-board cells are plain.
func (b *Board) Terrain(c grid.Cell) Terrain {
	if !b.InBounds(c) {
		return Plain
	}
	return b.terrain[b.index(c)]
}

func (b *Board) IsHideout(c grid.Cell) bool {
	return b.Terrain(c) == Hideout
}

// Hideouts lists every hideout cell, row-major.
func (b *Board) Hideouts() []grid.Cell {
	var cells []grid.Cell
	for i, t := range b.terrain {
		if t == Hideout {
			cells = append(cells, grid.Cell{Row: i / b.Width, Col: i % b.Width})
		}
	}
	return cells
}

// Safe reports whether a sheep standing on c can never be captured: every
// cell from c to the exit edge in its column is a hideout.
func (b *Board) Safe(c grid.Cell) bool {
	if b.exhaustive || !b.InBounds(c) {
		return false
	}
	return c.Row >= b.safeFrom[c.Col]
}

// Exhaustive returns a copy of the board on which no sheep is ever treated as
// unconditionally safe, so games are simulated to the end.
func (b *Board) Exhaustive() *Board {
	clone := *b
	clone.exhaustive = true
	return &clone
}

func (b *Board) KnightDestinations(c grid.Cell) []grid.Cell {
	return grid.KnightDestinations(c, b.Width, b.Height)
}
