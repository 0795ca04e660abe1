package metrics

import (
	"sync/atomic"
	"time"
)

type SimulationMetric struct {
	Goroutines int
	Seed       uint64
	Trials     int
	Chunks     int
	Steps      int // Dice comparisons across all trials
	Duration   time.Duration
}

type Collector interface {
	Start(goroutines int, seed uint64)
	AddChunk(trials int)
	AddSteps(steps int)
	Complete() SimulationMetric
}

type collector struct {
	goroutines int
	seed       uint64
	startTime  time.Time
	trials     atomic.Int64
	chunks     atomic.Int64
	steps      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int, seed uint64) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.seed = seed
}

func (m *collector) AddChunk(trials int) {
	m.chunks.Add(1)
	m.trials.Add(int64(trials))
}

func (m *collector) AddSteps(steps int) {
	m.steps.Add(int64(steps))
}

func (m *collector) Complete() SimulationMetric {
	return SimulationMetric{
		Goroutines: m.goroutines,
		Seed:       m.seed,
		Trials:     int(m.trials.Load()),
		Chunks:     int(m.chunks.Load()),
		Steps:      int(m.steps.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, seed uint64) {}
func (m *dummyCollector) AddChunk(trials int)               {}
func (m *dummyCollector) AddSteps(steps int)                {}
func (m *dummyCollector) Complete() SimulationMetric        { return SimulationMetric{} }
