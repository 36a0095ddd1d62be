package engine

import (
	"dragonchess/game"
	"errors"

	"golang.org/x/exp/rand"
)

var (
	ErrScriptExhausted = errors.New("script has no moves left")
	ErrNoMoves         = errors.New("no legal moves")
)

// RandomAgent plays uniformly among the legal moves.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state *game.GameState) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMoves
	}
	return moves[a.rng.Intn(len(moves))], nil
}

// ScriptedAgent replays a fixed move list. Passing the same agent for both
// sides replays a whole game.
type ScriptedAgent struct {
	moves []game.Move
	next  int
}

func NewScriptedAgent(moves []game.Move) *ScriptedAgent {
	return &ScriptedAgent{moves: moves}
}

func (a *ScriptedAgent) FindMove(state *game.GameState) (game.Move, error) {
	if a.next >= len(a.moves) {
		return game.Move{}, ErrScriptExhausted
	}
	move := a.moves[a.next]
	a.next++
	return move, nil
}
