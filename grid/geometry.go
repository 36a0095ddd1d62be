package grid

import (
	"dragonchess/meta"

	lru "github.com/hashicorp/golang-lru"
)

// Leaper offsets, (±2,±1) and (±1,±2)
var knightOffsets = [8]Cell{
	{Row: 2, Col: 1},
	{Row: 2, Col: -1},
	{Row: 1, Col: 2},
	{Row: 1, Col: -2},
	{Row: -1, Col: 2},
	{Row: -1, Col: -2},
	{Row: -2, Col: 1},
	{Row: -2, Col: -1},
}

type knightKey struct {
	cell          Cell
	width, height int
}

// Destinations depend only on (cell, width, height), so a shared cache is safe.
var knightCache *lru.Cache

func init() {
	knightCache, _ = lru.New(meta.KNIGHT_CACHE_SIZE)
}

// ResizeCache changes the number of memoized destination sets.
func ResizeCache(size int) {
	if size > 0 {
		knightCache.Resize(size)
	}
}

// KnightDestinations returns the in-bounds leaper destinations from cell, in
// offset table order. The returned slice is owned by the caller.
func KnightDestinations(cell Cell, width, height int) []Cell {
	key := knightKey{cell: cell, width: width, height: height}
	if cached, ok := knightCache.Get(key); ok {
		return append([]Cell(nil), cached.([]Cell)...)
	}

	dests := make([]Cell, 0, len(knightOffsets))
	for _, off := range knightOffsets {
		next := Cell{Row: cell.Row + off.Row, Col: cell.Col + off.Col}
		if next.InBounds(width, height) {
			dests = append(dests, next)
		}
	}
	knightCache.Add(key, dests)
	return append([]Cell(nil), dests...)
}
