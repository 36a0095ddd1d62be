// meta/meta.go
package meta

// GO_ROUTINES defines the default number of goroutines used to count a board.
const GO_ROUTINES = 1

// KNIGHT_CACHE_SIZE bounds the number of memoized knight destination sets.
const KNIGHT_CACHE_SIZE = 4096

// MAX_TURNS caps a single playout. Games always end well before this.
const MAX_TURNS = 10000

// OUTPUT_DIR is where experiment reports are written by default.
const OUTPUT_DIR = "experiments"

// LOG_LEVEL is the default zerolog level.
const LOG_LEVEL = "info"
