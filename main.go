package main

import (
	"dragonchess/config"
	"dragonchess/experiments"
	"dragonchess/experiments/metrics"
	"dragonchess/game"
	"dragonchess/grid"
	"dragonchess/searcher"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	puzzlesPath := flag.String("puzzles", "", "YAML puzzle set to count and report")
	boardPath := flag.String("board", "", "Board text file to count (- for stdin)")
	replay := flag.String("replay", "", "Moves to play on the board before counting, e.g. S>A2,D>A2")
	reach := flag.Int("reach", -1, "Report the sheep the dragon reaches within this many moves")
	exact := flag.Bool("exact", false, "With -reach, only count cells reached in exactly that many moves")
	simulate := flag.Int("simulate", 0, "Play this many random games from the board instead of counting")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for -simulate")
	goroutines := flag.Int("goroutines", 0, "Number of goroutines for counting (overrides the environment)")
	naive := flag.Bool("naive", false, "Count without the transposition table")
	lines := flag.Int("lines", 0, "Print up to this many dragon-winning move sequences")
	out := flag.String("out", "", "Directory for CSV reports (overrides the environment)")
	flag.Parse()

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *goroutines > 0 {
		settings.Goroutines = *goroutines
	}
	if *out != "" {
		settings.OutputDir = *out
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(settings.LogLevel)
	grid.ResizeCache(settings.CacheSize)

	options := []searcher.Option{searcher.WithGoroutines(settings.Goroutines)}
	if *naive {
		options = append(options, searcher.WithoutMemo())
	}

	switch {
	case *puzzlesPath != "":
		err = runPuzzles(*puzzlesPath, settings, options)
	case *boardPath != "" && *simulate > 0:
		err = runPlayouts(*boardPath, *simulate, *seed, settings)
	case *boardPath != "":
		err = runBoard(*boardPath, *replay, *reach, *exact, *lines, options)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func runPuzzles(path string, settings config.Settings, options []searcher.Option) error {
	puzzles, err := config.LoadPuzzles(path)
	if err != nil {
		return err
	}

	records, err := experiments.RunPuzzles(puzzles, options...)
	for _, record := range records {
		fmt.Printf("%s\t%d\n", record.Name, record.Count)
	}
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(settings.OutputDir, "puzzles")
	if err != nil {
		return err
	}
	if err := writer.WritePuzzleRecords(records); err != nil {
		return err
	}
	log.Info().Msgf("stored puzzle records in %s", writer.Dir())
	return nil
}

func runPlayouts(path string, games int, seed uint64, settings config.Settings) error {
	text, err := readBoard(path)
	if err != nil {
		return err
	}

	records, err := experiments.RunPlayouts(config.Puzzle{Name: path, Board: text}, games, seed)
	if err != nil {
		return err
	}

	writer, err := metrics.NewWriter(settings.OutputDir, "playouts")
	if err != nil {
		return err
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return err
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())
	return nil
}

func runBoard(path, replay string, reach int, exact bool, lines int, options []searcher.Option) error {
	text, err := readBoard(path)
	if err != nil {
		return err
	}
	state, err := game.ParseBoard(text)
	if err != nil {
		return err
	}

	if replay != "" {
		moves, err := game.ParseMoves(replay)
		if err != nil {
			return err
		}
		for _, move := range moves {
			if state, err = state.Apply(move.String()); err != nil {
				return err
			}
		}
		fmt.Println(state)
	}

	if reach >= 0 {
		threatened, err := state.ThreatenedSheep(reach, exact)
		if err != nil {
			return err
		}
		fmt.Printf("sheep in reach: %d\n", len(threatened))
	}

	counter := searcher.NewCounter(options...)
	count, _ := counter.Count(state)
	fmt.Println(count)

	if lines > 0 {
		for _, line := range counter.Lines(state, lines) {
			notations := make([]string, len(line))
			for i, move := range line {
				notations[i] = move.String()
			}
			fmt.Println(strings.Join(notations, " "))
		}
	}
	return nil
}

func readBoard(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read board: %w", err)
	}
	return string(data), nil
}
