package searcher

import (
	"dragonchess/experiments/metrics"
	"dragonchess/game"
	"dragonchess/meta"
	"sync"

	"github.com/rs/zerolog/log"
)

type Option func(c *Counter)

// Counter counts the dragon-winning leaves of the full game tree below a
// state, with both sides playing every legal move.
type Counter struct {
	goroutines int
	memoized   bool
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(c *Counter) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

// WithoutMemo disables the transposition table. Only useful as a reference on
// small boards.
func WithoutMemo() Option {
	return func(c *Counter) {
		c.memoized = false
	}
}

func WithMetrics() Option {
	return func(c *Counter) {
		c.metrics = metrics.NewCollector()
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(c *Counter) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func NewCounter(options ...Option) *Counter {
	c := &Counter{ // Default values
		goroutines: meta.GO_ROUTINES,
		memoized:   true,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(c)
	}
	if c.goroutines <= 0 {
		panic("Must use at least one goroutine")
	}
	return c
}

// Count returns the number of dragon-winning leaves below state. Every call
// uses a fresh table, so separate boards never share results.
func (c *Counter) Count(state game.State) (uint64, metrics.SearchMetric) {
	table := c.newTable()

	c.metrics.Start(c.goroutines, c.memoized)
	log.Debug().Msgf("counting dragon wins with %d goroutine(s), memoized=%t", c.goroutines, c.memoized)

	var total uint64
	if c.goroutines > 1 && state.Winner() == game.NoSide {
		total = c.countParallel(state, table)
	} else {
		total = c.count(state, table)
	}

	c.metrics.SetTableSize(table.Len())
	metric := c.metrics.Complete()
	log.Debug().Msgf("counted %d dragon wins, %d states memoized", total, table.Len())

	return total, metric
}

func (c *Counter) newTable() Table {
	switch {
	case !c.memoized:
		return noTable{}
	case c.goroutines > 1:
		return newSharedTable()
	default:
		return newLocalTable()
	}
}

func (c *Counter) count(state game.State, table Table) uint64 {
	switch winner := state.Winner(); winner {
	case game.Sheep:
		c.metrics.AddLeaf(winner)
		return 0
	case game.Dragon:
		c.metrics.AddLeaf(winner)
		return 1
	}

	key := state.Key()
	if total, ok := table.Lookup(key); ok {
		c.metrics.AddCacheHit()
		return total
	}

	c.metrics.AddExpansion()
	var total uint64
	for _, move := range state.LegalMoves() {
		total += c.count(state.Play(move), table)
	}
	return table.Store(key, total)
}

// countParallel hands the root's moves to workers that share one table.
func (c *Counter) countParallel(state game.State, table Table) uint64 {
	moves := state.LegalMoves()
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	counts := make([]uint64, len(moves))
	var wg sync.WaitGroup
	for i := 0; i < min(c.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for ith := range task {
				counts[ith] = c.count(state.Play(moves[ith]), table)
			}
		}()
	}
	wg.Wait()

	c.metrics.AddExpansion()
	var total uint64
	for _, n := range counts {
		total += n
	}
	return table.Store(state.Key(), total)
}

// Lines returns up to limit complete move sequences that end in a dragon win,
// in move generation order. Subtrees known to hold no dragon win are skipped.
func (c *Counter) Lines(state game.State, limit int) [][]game.Move {
	if limit <= 0 {
		return nil
	}
	table := newLocalTable()
	c.count(state, table)

	var lines [][]game.Move
	var walk func(s game.State) bool
	walk = func(s game.State) bool {
		switch s.Winner() {
		case game.Dragon:
			lines = append(lines, s.History())
			return len(lines) < limit
		case game.Sheep:
			return true
		}
		if total, ok := table.Lookup(s.Key()); ok && total == 0 {
			return true
		}
		for _, move := range s.LegalMoves() {
			if !walk(s.Play(move)) {
				return false
			}
		}
		return true
	}
	walk(state)
	return lines
}
