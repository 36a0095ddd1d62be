package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type PuzzleRecord struct {
	Name       string
	Width      int
	Height     int
	Sheep      int
	Count      uint64
	Expected   *uint64 // nil when the puzzle has no known answer
	Threatened int     // -1 when no reach query was asked
	SearchMetric
}

// Matches reports whether the count agrees with the expected one, if any.
func (r PuzzleRecord) Matches() bool {
	return r.Expected == nil || *r.Expected == r.Count
}

type GameRecord struct {
	ID     int
	Puzzle string
	Seed   uint64
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes reports into it.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WritePuzzleRecords(records []PuzzleRecord) error {
	header := []string{"name", "width", "height", "sheep", "count", "expected", "matches", "threatened",
		"goroutines", "memoized", "duration", "expansions", "cache_hits", "dragon_leaves", "sheep_leaves", "table_size"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		expected := ""
		if record.Expected != nil {
			expected = strconv.FormatUint(*record.Expected, 10)
		}
		rows = append(rows, []string{
			record.Name,
			strconv.Itoa(record.Width),
			strconv.Itoa(record.Height),
			strconv.Itoa(record.Sheep),
			strconv.FormatUint(record.Count, 10),
			expected,
			strconv.FormatBool(record.Matches()),
			strconv.Itoa(record.Threatened),
			strconv.Itoa(record.Goroutines),
			strconv.FormatBool(record.Memoized),
			record.Duration.String(),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.CacheHits),
			strconv.Itoa(record.DragonLeaves),
			strconv.Itoa(record.SheepLeaves),
			strconv.Itoa(record.TableSize),
		})
	}

	return w.writeCSV("puzzle_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "puzzle", "seed", "winner", "total_moves", "captures", "start_time", "end_time", "duration"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Puzzle,
			strconv.FormatUint(record.Seed, 10),
			record.Winner,
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Captures),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}

	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
