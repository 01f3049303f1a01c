package metrics

import (
	"nim/game"
	"time"
)

// SearchMetric is what one decision engine call cost.
type SearchMetric struct {
	Traces       int
	Duration     time.Duration
	Candidates   int
	Playouts     int
	ShortCircuit bool // an immediately winning move ended the search
}

type MoveMetric struct {
	Step       int
	Player     int // seat index
	Difficulty game.Difficulty
	Move       game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // seat index
	Reason         game.Reason
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(traces int)
	AddCandidate()
	AddPlayout()
	SetShortCircuit()
	Complete() SearchMetric
}

type collector struct {
	traces       int
	startTime    time.Time
	candidates   int
	playouts     int
	shortCircuit bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(traces int) {
	*m = collector{traces: traces, startTime: time.Now()}
}

func (m *collector) AddCandidate() {
	m.candidates++
}

func (m *collector) AddPlayout() {
	m.playouts++
}

func (m *collector) SetShortCircuit() {
	m.shortCircuit = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Traces:       m.traces,
		Duration:     time.Since(m.startTime),
		Candidates:   m.candidates,
		Playouts:     m.playouts,
		ShortCircuit: m.shortCircuit,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(traces int)       {}
func (m *dummyCollector) AddCandidate()          {}
func (m *dummyCollector) AddPlayout()            {}
func (m *dummyCollector) SetShortCircuit()       {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
