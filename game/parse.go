package game

import (
	"fmt"
	"strings"

	"dragonchess/grid"
)

const (
	dragonSymbol  = 'D'
	sheepSymbol   = 'S'
	hideoutSymbol = '#'
	plainSymbol   = '.'
)

// ParseBoard builds the starting state from board text, one row per line with
// the top row first.
func ParseBoard(text string) (*GameState, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidBoard)
	}
	rows := strings.Split(text, "\n")

	width := len(rows[0])
	var (
		dragons  []grid.Cell
		sheep    []grid.Cell
		hideouts []grid.Cell
	)
	for r, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, r+1, len(line), width)
		}
		for c := 0; c < len(line); c++ {
			cell := grid.Cell{Row: r, Col: c}
			switch line[c] {
			case dragonSymbol:
				dragons = append(dragons, cell)
			case sheepSymbol:
				sheep = append(sheep, cell)
			case hideoutSymbol:
				hideouts = append(hideouts, cell)
			case plainSymbol:
			default:
				return nil, fmt.Errorf("%w: unknown symbol %q at %v", ErrInvalidBoard, line[c], cell)
			}
		}
	}
	if len(dragons) != 1 {
		return nil, fmt.Errorf("%w: expected 1 dragon, found %d", ErrInvalidBoard, len(dragons))
	}

	board, err := NewBoard(width, len(rows), hideouts)
	if err != nil {
		return nil, err
	}
	return NewGameState(board, dragons[0], sheep)
}
