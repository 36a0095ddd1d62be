package metrics

import (
	"dragonchess/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines   int
	Memoized     bool
	Duration     time.Duration
	Expansions   int
	CacheHits    int
	DragonLeaves int
	SheepLeaves  int
	TableSize    int
}

type GameMetric struct {
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Captures   int
}

type Collector interface {
	Start(goroutines int, memoized bool)
	AddExpansion()
	AddCacheHit()
	AddLeaf(winner game.Side)
	SetTableSize(size int)
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	memoized     bool
	startTime    time.Time
	expansions   atomic.Int64
	cacheHits    atomic.Int64
	dragonLeaves atomic.Int64
	sheepLeaves  atomic.Int64
	tableSize    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int, memoized bool) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.memoized = memoized
	m.expansions.Store(0)
	m.cacheHits.Store(0)
	m.dragonLeaves.Store(0)
	m.sheepLeaves.Store(0)
	m.tableSize.Store(0)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) AddLeaf(winner game.Side) {
	switch winner {
	case game.Dragon:
		m.dragonLeaves.Add(1)
	case game.Sheep:
		m.sheepLeaves.Add(1)
	}
}

func (m *collector) SetTableSize(size int) {
	m.tableSize.Store(int64(size))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Memoized:     m.memoized,
		Duration:     time.Since(m.startTime),
		Expansions:   int(m.expansions.Load()),
		CacheHits:    int(m.cacheHits.Load()),
		DragonLeaves: int(m.dragonLeaves.Load()),
		SheepLeaves:  int(m.sheepLeaves.Load()),
		TableSize:    int(m.tableSize.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, memoized bool) {}
func (m *dummyCollector) AddExpansion()                       {}
func (m *dummyCollector) AddCacheHit()                        {}
func (m *dummyCollector) AddLeaf(winner game.Side)            {}
func (m *dummyCollector) SetTableSize(size int)               {}
func (m *dummyCollector) Complete() SearchMetric              { return SearchMetric{} }
