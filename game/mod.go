package game

import "errors"

var (
	ErrInvalidBoard = errors.New("invalid board state")
	ErrGameOver     = errors.New("game already over")
	ErrIllegalMove  = errors.New("illegal move")
	ErrBadNotation  = errors.New("bad move notation")
)

// Side identifies the player to move, or the winner.
type Side int

const (
	NoSide Side = iota
	Sheep
	Dragon
)

func (s Side) String() string {
	switch s {
	case Sheep:
		return "sheep"
	case Dragon:
		return "dragon"
	default:
		return ""
	}
}

// Opponent returns the other side. NoSide has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Sheep:
		return Dragon
	case Dragon:
		return Sheep
	default:
		return NoSide
	}
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Side
	LegalMoves() []Move
	Play(Move) State
	Key() Key
	Winner() Side
	History() []Move
}
