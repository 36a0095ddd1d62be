package engine

import (
	"dragonchess/experiments/metrics"
	"dragonchess/game"
	"dragonchess/meta"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State  *game.GameState
	Agents map[game.Side]Agent
}

func NewLocalEngine(state *game.GameState, sheep, dragon Agent) *LocalEngine {
	if state == nil {
		panic("need a starting state")
	}
	if sheep == nil || dragon == nil {
		panic("need an agent for each side")
	}

	return &LocalEngine{
		State: state,
		Agents: map[game.Side]Agent{
			game.Sheep:  sheep,
			game.Dragon: dragon,
		},
	}
}

// Run executes the game loop until a winner is found.
func (e *LocalEngine) Run() (game.Side, metrics.GameMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	log.Info().Msgf("%s is starting with %d sheep on the board", e.State.Player(), e.State.SheepCount())

	turnCount := 0
	for e.State.Winner() == game.NoSide && turnCount < meta.MAX_TURNS {
		player := e.State.Player()

		move, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			return game.NoSide, e.complete(gameMetric, turnCount), fmt.Errorf("%s agent failed on turn %d: %w", player, turnCount+1, err)
		}
		if !e.State.IsLegal(move) {
			return game.NoSide, e.complete(gameMetric, turnCount), fmt.Errorf("%w: %s played %v on turn %d", game.ErrIllegalMove, player, move, turnCount+1)
		}

		newState := e.State.Next(move)
		if move.Kind == game.DragonLeap && newState.SheepCount() < e.State.SheepCount() {
			gameMetric.Captures++
		}
		log.Debug().Msgf("turn %d: %s played %v", turnCount+1, player, move)

		e.State = newState
		turnCount++
	}

	if e.State.Winner() != game.NoSide {
		log.Info().Msgf("game ended after %d turns, winner: %s", turnCount, e.State.Winner())
	} else {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", turnCount)
	}

	return e.State.Winner(), e.complete(gameMetric, turnCount), nil
}

func (e *LocalEngine) complete(gameMetric metrics.GameMetric, turns int) metrics.GameMetric {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = turns
	gameMetric.Winner = e.State.Winner().String()
	return gameMetric
}
