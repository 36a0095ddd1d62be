package grid

import (
	"fmt"
	"sort"
)

// Reachable returns the cells a leaper starting at start can reach on a
// width x height board. With exact unset it returns every cell reachable in
// at most moves jumps (start included); with exact set, only the cells at the
// end of some walk of exactly moves jumps. Cells are sorted row-major.
func Reachable(start Cell, width, height, moves int, exact bool) ([]Cell, error) {
	if moves < 0 {
		return nil, fmt.Errorf("moves must be non-negative, got %d", moves)
	}
	if !start.InBounds(width, height) {
		return nil, fmt.Errorf("start %v is off a %dx%d board", start, width, height)
	}

	frontier := map[Cell]struct{}{start: {}}
	seen := map[Cell]struct{}{start: {}}
	for i := 0; i < moves; i++ {
		next := make(map[Cell]struct{})
		for cell := range frontier {
			for _, dest := range KnightDestinations(cell, width, height) {
				next[dest] = struct{}{}
				seen[dest] = struct{}{}
			}
		}
		frontier = next
	}

	result := seen
	if exact {
		result = frontier
	}
	cells := make([]Cell, 0, len(result))
	for cell := range result {
		cells = append(cells, cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells, nil
}
