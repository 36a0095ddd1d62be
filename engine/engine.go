package engine

import (
	"dragonchess/experiments/metrics"
	"dragonchess/game"
)

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (winner game.Side, gameMetric metrics.GameMetric, err error)
}

type Agent interface {
	// FindMove picks the move to play in state
	FindMove(state *game.GameState) (game.Move, error)
}
