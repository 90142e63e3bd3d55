package simulator

import (
	"sync/atomic"
	"time"
)

type Metric struct {
	Goroutines int
	Trials     int
	Wins       int
	StartTime  time.Time
	Duration   time.Duration
}

// TrialsPerSecond is the throughput of the run.
func (m Metric) TrialsPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Trials) / m.Duration.Seconds()
}

type Collector interface {
	Start(goroutines int)
	AddTrial(won bool)
	Complete() Metric
}

type collector struct {
	goroutines int
	startTime  time.Time
	trials     atomic.Int64
	wins       atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.trials.Store(0)
	m.wins.Store(0)
}

func (m *collector) AddTrial(won bool) {
	m.trials.Add(1)
	if won {
		m.wins.Add(1)
	}
}

func (m *collector) Complete() Metric {
	return Metric{
		Goroutines: m.goroutines,
		Trials:     int(m.trials.Load()),
		Wins:       int(m.wins.Load()),
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int) {}
func (m *dummyCollector) AddTrial(won bool)    {}
func (m *dummyCollector) Complete() Metric     { return Metric{} }
