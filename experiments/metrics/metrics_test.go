package metrics

import (
	"dragonchess/game"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, true)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddExpansion()
					c.AddCacheHit()
					c.AddLeaf(game.Dragon)
				}
				c.AddLeaf(game.Sheep)
				c.AddLeaf(game.NoSide)
			}()
		}
		wg.Wait()
		c.SetTableSize(42)

		m := c.Complete()
		require.Equal(t, 400, m.Expansions)
		require.Equal(t, 400, m.CacheHits)
		require.Equal(t, 400, m.DragonLeaves)
		require.Equal(t, 4, m.SheepLeaves)
		require.Equal(t, 42, m.TableSize)
		require.Equal(t, 4, m.Goroutines)
		require.True(t, m.Memoized)
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, true)
		c.AddExpansion()
		c.SetTableSize(3)

		c.Start(2, false)
		m := c.Complete()

		require.Zero(t, m.Expansions)
		require.Zero(t, m.TableSize)
		require.False(t, m.Memoized)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(8, true)
		c.AddExpansion()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	t.Run("puzzle records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "puzzles")
		require.NoError(t, err)

		expected := uint64(15)
		wrong := uint64(16)
		err = w.WritePuzzleRecords([]PuzzleRecord{
			{Name: "a", Width: 3, Height: 4, Sheep: 3, Count: 15, Expected: &expected, Threatened: -1,
				SearchMetric: SearchMetric{Goroutines: 1, Memoized: true, Expansions: 10}},
			{Name: "b", Width: 3, Height: 4, Sheep: 3, Count: 15, Expected: &wrong, Threatened: 2},
			{Name: "c", Count: 7, Threatened: -1},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "puzzle_records.csv"))
		require.Len(t, rows, 4)
		require.Equal(t, "name", rows[0][0])
		require.Equal(t, []string{"a", "3", "4", "3", "15", "15", "true", "-1"}, rows[1][:8])
		require.Equal(t, "false", rows[2][6])
		require.Equal(t, "", rows[3][5])
		require.Equal(t, "true", rows[3][6])
	})

	t.Run("game records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "playouts")
		require.NoError(t, err)

		now := time.Now()
		err = w.WriteGameRecords([]GameRecord{
			{ID: 1, Puzzle: "a", Seed: 9, GameMetric: GameMetric{Winner: "dragon", TotalMoves: 6, Captures: 3, StartTime: now, EndTime: now}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "a", "9", "dragon", "6", "3"}, rows[1][:6])
	})
}
