package config

import (
	"dragonchess/meta"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	EnvGoroutines = "DRAGONCHESS_GOROUTINES"
	EnvLogLevel   = "DRAGONCHESS_LOG_LEVEL"
	EnvOutputDir  = "DRAGONCHESS_OUTPUT_DIR"
	EnvCacheSize  = "DRAGONCHESS_CACHE_SIZE"
)

type Settings struct {
	Goroutines int
	LogLevel   zerolog.Level
	OutputDir  string
	CacheSize  int
}

func Defaults() Settings {
	level, _ := zerolog.ParseLevel(meta.LOG_LEVEL)
	return Settings{
		Goroutines: meta.GO_ROUTINES,
		LogLevel:   level,
		OutputDir:  meta.OUTPUT_DIR,
		CacheSize:  meta.KNIGHT_CACHE_SIZE,
	}
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment win over .env.
func Load() (Settings, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds settings from the process environment only.
func FromEnv() (Settings, error) {
	s := Defaults()

	if v, ok := os.LookupEnv(EnvGoroutines); ok {
		n, err := positive(EnvGoroutines, v)
		if err != nil {
			return Settings{}, err
		}
		s.Goroutines = n
	}
	if v, ok := os.LookupEnv(EnvCacheSize); ok {
		n, err := positive(EnvCacheSize, v)
		if err != nil {
			return Settings{}, err
		}
		s.CacheSize = n
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		s.LogLevel = level
	}
	if v, ok := os.LookupEnv(EnvOutputDir); ok && v != "" {
		s.OutputDir = v
	}

	return s, nil
}

func positive(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid %s: %d is not positive", name, n)
	}
	return n, nil
}
