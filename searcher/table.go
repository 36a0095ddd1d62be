package searcher

import (
	"dragonchess/game"
	"sync"
)

const tableShards = 64

// Table is a transposition table mapping canonical states to their count of
// dragon-winning leaves. A table belongs to exactly one query.
type Table interface {
	Lookup(key game.Key) (uint64, bool)
	// Store records count for key and returns the value the table retains
	Store(key game.Key, count uint64) uint64
	Len() int
}

type localTable map[game.Key]uint64

func newLocalTable() localTable {
	return make(localTable)
}

func (t localTable) Lookup(key game.Key) (uint64, bool) {
	count, ok := t[key]
	return count, ok
}

func (t localTable) Store(key game.Key, count uint64) uint64 {
	t[key] = count
	return count
}

func (t localTable) Len() int {
	return len(t)
}

type shard struct {
	sync.RWMutex
	entries map[game.Key]uint64
}

// sharedTable is safe for concurrent workers. The first stored count for a
// key wins; later duplicates are discarded.
type sharedTable struct {
	shards [tableShards]shard
}

func newSharedTable() *sharedTable {
	t := &sharedTable{}
	for i := range t.shards {
		t.shards[i].entries = make(map[game.Key]uint64)
	}
	return t
}

func (t *sharedTable) shardFor(key game.Key) *shard {
	return &t.shards[uint64(key.Hash())%tableShards]
}

func (t *sharedTable) Lookup(key game.Key) (uint64, bool) {
	s := t.shardFor(key)
	s.RLock()
	defer s.RUnlock()

	count, ok := s.entries[key]
	return count, ok
}

func (t *sharedTable) Store(key game.Key, count uint64) uint64 {
	s := t.shardFor(key)
	s.Lock()
	defer s.Unlock()

	if existing, ok := s.entries[key]; ok {
		return existing
	}
	s.entries[key] = count
	return count
}

func (t *sharedTable) Len() int {
	n := 0
	for i := range t.shards {
		t.shards[i].RLock()
		n += len(t.shards[i].entries)
		t.shards[i].RUnlock()
	}
	return n
}

// noTable never remembers anything; it turns the counter into a plain tree walk.
type noTable struct{}

func (noTable) Lookup(game.Key) (uint64, bool)       { return 0, false }
func (noTable) Store(_ game.Key, count uint64) uint64 { return count }
func (noTable) Len() int                              { return 0 }
