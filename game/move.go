package game

import (
	"fmt"
	"strings"

	"dragonchess/grid"
)

// MoveKind distinguishes the three kinds of turn.
type MoveKind int

const (
	SheepStep MoveKind = iota
	DragonLeap
	Pass
)

// Move is a single turn. A sheep step is identified by its destination: the
// stepping sheep is the one in the destination's column.
type Move struct {
	Kind MoveKind
	To   grid.Cell
}

// PassMove is the sheep side's no-op when no sheep can advance.
var PassMove = Move{Kind: Pass}

func (m Move) Player() Side {
	if m.Kind == DragonLeap {
		return Dragon
	}
	return Sheep
}

func (m Move) String() string {
	switch m.Kind {
	case SheepStep:
		return "S>" + m.To.String()
	case DragonLeap:
		return "D>" + m.To.String()
	default:
		return "S>pass"
	}
}

// ParseMove reads the S>A2 / D>C1 / S>pass notation.
func ParseMove(s string) (Move, error) {
	side, target, ok := strings.Cut(strings.TrimSpace(s), ">")
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	side = strings.ToUpper(side)
	if side == "S" && strings.EqualFold(target, "pass") {
		return PassMove, nil
	}

	to, err := grid.ParseCell(target)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	switch side {
	case "S":
		return Move{Kind: SheepStep, To: to}, nil
	case "D":
		return Move{Kind: DragonLeap, To: to}, nil
	default:
		return Move{}, fmt.Errorf("%w: unknown side in %q", ErrBadNotation, s)
	}
}

// ParseMoves reads a comma or whitespace separated move list.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	})
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
