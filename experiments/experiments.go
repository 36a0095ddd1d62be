package experiments

import (
	"dragonchess/config"
	"dragonchess/engine"
	"dragonchess/experiments/metrics"
	"dragonchess/game"
	"dragonchess/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

// RunPuzzles counts the dragon wins of every puzzle and answers its
// threatened-sheep query when one is configured. A count that disagrees with
// the expected one is logged, not treated as an error.
func RunPuzzles(puzzles []config.Puzzle, options ...searcher.Option) ([]metrics.PuzzleRecord, error) {
	options = append([]searcher.Option{searcher.WithMetrics()}, options...)
	records := make([]metrics.PuzzleRecord, 0, len(puzzles))

	log.Info().Msgf("starting %d puzzle(s)...", len(puzzles))

	for i, puzzle := range puzzles {
		state, err := game.ParseBoard(puzzle.Board)
		if err != nil {
			return records, fmt.Errorf("puzzle %s: %w", puzzle.Name, err)
		}

		record := metrics.PuzzleRecord{
			Name:       puzzle.Name,
			Width:      state.Board().Width,
			Height:     state.Board().Height,
			Sheep:      state.SheepCount(),
			Expected:   puzzle.Expected,
			Threatened: -1,
		}

		if puzzle.Reach != nil {
			threatened, err := state.ThreatenedSheep(*puzzle.Reach, puzzle.Exact)
			if err != nil {
				return records, fmt.Errorf("puzzle %s: %w", puzzle.Name, err)
			}
			record.Threatened = len(threatened)
		}

		record.Count, record.SearchMetric = searcher.NewCounter(options...).Count(state)

		if !record.Matches() {
			log.Warn().Msgf("puzzle %d of %d (%s): counted %d, expected %d", i+1, len(puzzles), puzzle.Name, record.Count, *record.Expected)
		} else {
			log.Info().Msgf("puzzle %d of %d (%s): %d dragon wins in %v", i+1, len(puzzles), puzzle.Name, record.Count, record.Duration)
		}

		records = append(records, record)
	}

	log.Info().Msgf("completed %d puzzle(s)", len(records))
	return records, nil
}

// RunPlayouts plays random-vs-random games from the puzzle's starting
// position. Game i uses seed+i for the sheep and the next seed for the dragon.
func RunPlayouts(puzzle config.Puzzle, games int, seed uint64) ([]metrics.GameRecord, error) {
	start, err := game.ParseBoard(puzzle.Board)
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", puzzle.Name, err)
	}

	records := make([]metrics.GameRecord, 0, games)
	wins := map[game.Side]int{}

	log.Info().Msgf("starting %d playout(s) of %s...", games, puzzle.Name)

	for i := 0; i < games; i++ {
		gameSeed := seed + uint64(2*i)
		e := engine.NewLocalEngine(start, engine.NewRandomAgent(gameSeed), engine.NewRandomAgent(gameSeed+1))

		winner, gameMetric, err := e.Run()
		if err != nil {
			return records, fmt.Errorf("playout %d of %s: %w", i+1, puzzle.Name, err)
		}
		wins[winner]++

		records = append(records, metrics.GameRecord{
			ID:         i + 1,
			Puzzle:     puzzle.Name,
			Seed:       gameSeed,
			GameMetric: gameMetric,
		})
	}

	log.Info().Msgf("completed %d playout(s) of %s: dragon %d, sheep %d", games, puzzle.Name, wins[game.Dragon], wins[game.Sheep])
	return records, nil
}
