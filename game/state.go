package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"dragonchess/grid"
	"dragonchess/utils"
)

// Key is the canonical, history-free identity of a state. Two states reached
// by different move sequences share a Key when their positions match.
type Key struct {
	Dragon  grid.Cell
	Sheep   string
	Mover   Side
	Escaped bool
}

// trail is a persistent move list; successors share their parent's prefix.
type trail struct {
	prev  *trail
	move  Move
	depth int
}

// GameState represents the position at one point of a game. It is never
// modified after construction: Play returns a new value.
type GameState struct {
	board   *Board
	dragon  grid.Cell
	sheep   herd
	mover   Side
	escaped bool
	winner  Side
	trail   *trail
}

// NewGameState validates a starting position. The sheep move first.
func NewGameState(board *Board, dragon grid.Cell, sheep []grid.Cell) (*GameState, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: missing board", ErrInvalidBoard)
	}
	if !board.InBounds(dragon) {
		return nil, fmt.Errorf("%w: dragon %v is off the board", ErrInvalidBoard, dragon)
	}

	h := newHerd(board.Width)
	for _, cell := range sheep {
		if !board.InBounds(cell) {
			return nil, fmt.Errorf("%w: sheep %v is off the board", ErrInvalidBoard, cell)
		}
		if row, ok := h.row(cell.Col); ok {
			return nil, fmt.Errorf("%w: sheep at %v and %v share a column", ErrInvalidBoard,
				grid.Cell{Row: row, Col: cell.Col}, cell)
		}
		if cell == dragon && !board.IsHideout(cell) {
			return nil, fmt.Errorf("%w: sheep %v stands on the dragon outside a hideout", ErrInvalidBoard, cell)
		}
		h = h.with(cell)
	}

	gs := &GameState{
		board:  board,
		dragon: dragon,
		sheep:  h,
		mover:  Sheep,
	}
	gs.winner = gs.checkWinner()
	return gs, nil
}

func (gs *GameState) Board() *Board {
	return gs.board
}

func (gs *GameState) Dragon() grid.Cell {
	return gs.dragon
}

// Sheep returns the sheep cells in column order.
func (gs *GameState) Sheep() []grid.Cell {
	return gs.sheep.cells()
}

func (gs *GameState) SheepCount() int {
	return gs.sheep.count()
}

// Player returns the side to move.
func (gs *GameState) Player() Side {
	return gs.mover
}

// Winner returns the side that has won, or NoSide while the game is running.
func (gs *GameState) Winner() Side {
	return gs.winner
}

func (gs *GameState) checkWinner() Side {
	if gs.escaped {
		return Sheep
	}
	if gs.sheep.count() == 0 {
		return Dragon
	}
	for _, cell := range gs.sheep.cells() {
		if gs.board.Safe(cell) {
			return Sheep
		}
	}
	return NoSide
}

// LegalMoves returns every move available to the side to move. It panics once
// the game is over.
func (gs *GameState) LegalMoves() []Move {
	if gs.winner != NoSide {
		panic(fmt.Errorf("%w: %s has won", ErrGameOver, gs.winner))
	}

	switch gs.mover {
	case Sheep:
		moves := make([]Move, 0, gs.board.Width)
		for _, cell := range gs.sheep.cells() {
			dest := grid.Cell{Row: cell.Row + 1, Col: cell.Col}
			// An exposed dragon blocks the step
			if dest == gs.dragon && !gs.board.IsHideout(dest) {
				continue
			}
			moves = append(moves, Move{Kind: SheepStep, To: dest})
		}
		if len(moves) == 0 {
			return []Move{PassMove}
		}
		return moves
	case Dragon:
		dests := gs.board.KnightDestinations(gs.dragon)
		moves := make([]Move, len(dests))
		for i, dest := range dests {
			moves[i] = Move{Kind: DragonLeap, To: dest}
		}
		return moves
	default:
		panic(fmt.Sprintf("unexpected side to move: %d", gs.mover))
	}
}

// IsLegal reports whether move may be played now. It never panics.
func (gs *GameState) IsLegal(move Move) bool {
	if gs.winner != NoSide {
		return false
	}
	return utils.Contains(gs.LegalMoves(), move)
}

// Play implements State.
func (gs *GameState) Play(move Move) State {
	return gs.Next(move)
}

// Next returns the successor after move. It panics when the game is over or
// the move is not legal.
func (gs *GameState) Next(move Move) *GameState {
	if gs.winner != NoSide {
		panic(fmt.Errorf("%w: cannot play %v, %s has won", ErrGameOver, move, gs.winner))
	}
	if !utils.Contains(gs.LegalMoves(), move) {
		panic(fmt.Errorf("%w: %v", ErrIllegalMove, move))
	}
	return gs.apply(move)
}

// Apply plays a move in S>A2 notation, returning contract violations as errors.
func (gs *GameState) Apply(notation string) (*GameState, error) {
	move, err := ParseMove(notation)
	if err != nil {
		return nil, err
	}
	if gs.winner != NoSide {
		return nil, fmt.Errorf("%w: cannot play %v, %s has won", ErrGameOver, move, gs.winner)
	}
	if !gs.IsLegal(move) {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, move)
	}
	return gs.apply(move), nil
}

func (gs *GameState) apply(move Move) *GameState {
	next := &GameState{
		board:   gs.board,
		dragon:  gs.dragon,
		sheep:   gs.sheep,
		mover:   gs.mover.Opponent(),
		escaped: gs.escaped,
		trail:   &trail{prev: gs.trail, move: move, depth: gs.depth() + 1},
	}

	switch move.Kind {
	case Pass:
	case SheepStep:
		if move.To.Row >= gs.board.Height {
			next.sheep = gs.sheep.without(move.To.Col)
			next.escaped = true
		} else {
			next.sheep = gs.sheep.with(move.To)
		}
	case DragonLeap:
		next.dragon = move.To
		if gs.sheep.has(move.To) && !gs.board.IsHideout(move.To) {
			next.sheep = gs.sheep.without(move.To.Col)
		}
	default:
		panic(fmt.Sprintf("unknown move kind: %d", move.Kind))
	}

	next.winner = next.checkWinner()
	return next
}

func (gs *GameState) depth() int {
	if gs.trail == nil {
		return 0
	}
	return gs.trail.depth
}

// History returns the moves played since the starting position.
func (gs *GameState) History() []Move {
	moves := make([]Move, gs.depth())
	for t := gs.trail; t != nil; t = t.prev {
		moves[t.depth-1] = t.move
	}
	return moves
}

// Key implements State.
func (gs *GameState) Key() Key {
	return Key{
		Dragon:  gs.dragon,
		Sheep:   string(gs.sheep),
		Mover:   gs.mover,
		Escaped: gs.escaped,
	}
}

func (gs *GameState) Hash() StateHash {
	return gs.Key().Hash()
}

// Hash folds a key into 64 bits.
func (k Key) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(k.Dragon.Row))
	binary.Write(hasher, binary.LittleEndian, int64(k.Dragon.Col))
	hasher.Write([]byte(k.Sheep))
	binary.Write(hasher, binary.LittleEndian, int64(k.Mover))
	binary.Write(hasher, binary.LittleEndian, k.Escaped)

	return StateHash(hasher.Sum64())
}

// ThreatenedSheep lists the sheep standing on cells the dragon can reach in
// at most (or, with exact, exactly) the given number of moves. Turn order is
// ignored.
func (gs *GameState) ThreatenedSheep(moves int, exact bool) ([]grid.Cell, error) {
	cells, err := grid.Reachable(gs.dragon, gs.board.Width, gs.board.Height, moves, exact)
	if err != nil {
		return nil, err
	}
	var threatened []grid.Cell
	for _, cell := range cells {
		if gs.sheep.has(cell) {
			threatened = append(threatened, cell)
		}
	}
	return threatened, nil
}

// String renders the position with the symbols ParseBoard accepts.
func (gs *GameState) String() string {
	var sb strings.Builder
	for row := 0; row < gs.board.Height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < gs.board.Width; col++ {
			cell := grid.Cell{Row: row, Col: col}
			switch {
			case cell == gs.dragon:
				sb.WriteByte(dragonSymbol)
			case gs.sheep.has(cell):
				sb.WriteByte(sheepSymbol)
			case gs.board.IsHideout(cell):
				sb.WriteByte(hideoutSymbol)
			default:
				sb.WriteByte(plainSymbol)
			}
		}
	}
	return sb.String()
}
