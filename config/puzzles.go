package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidPuzzle = errors.New("invalid puzzle")

// Puzzle is one entry of a puzzle set file.
type Puzzle struct {
	Name     string  `yaml:"name"`
	Board    string  `yaml:"board"`
	Expected *uint64 `yaml:"expected,omitempty"`
	Reach    *int    `yaml:"reach,omitempty"` // dragon moves for the threatened-sheep query
	Exact    bool    `yaml:"exact,omitempty"`
}

type PuzzleSet struct {
	Puzzles []Puzzle `yaml:"puzzles"`
}

func ParsePuzzles(data []byte) ([]Puzzle, error) {
	var set PuzzleSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle set: %w", err)
	}

	for i := range set.Puzzles {
		p := &set.Puzzles[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("puzzle-%d", i+1)
		}
		if p.Board == "" {
			return nil, fmt.Errorf("%w: %s has no board", ErrInvalidPuzzle, p.Name)
		}
		if p.Reach != nil && *p.Reach < 0 {
			return nil, fmt.Errorf("%w: %s has negative reach %d", ErrInvalidPuzzle, p.Name, *p.Reach)
		}
	}

	return set.Puzzles, nil
}

func LoadPuzzles(path string) ([]Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle set: %w", err)
	}
	return ParsePuzzles(data)
}
