// Package simulator estimates Risk combat odds by running independent trials
// in parallel and summing their outcomes.
package simulator

import (
	"fmt"
	"runtime"
	"sync"

	"risksim/experiments/metrics"
	"risksim/game"

	"golang.org/x/exp/rand"
)

// chunkSize is the number of trials sharing one random source. It is fixed so
// that a seeded run gives the same result for any number of goroutines.
const chunkSize = 10_000

type Option func(s *Simulator)

type Simulator struct {
	goroutines   int
	seed         uint64
	seeded       bool
	rules        game.Rules
	newCollector func() metrics.Collector
}

// Result is the aggregate of all trials for one configuration.
type Result struct {
	Attacker      int // Dice or soldiers, depending on the mode
	Defender      int
	Trials        int
	Wins          int64
	WinPercentage float64
	Metric        metrics.SimulationMetric
}

// trial runs once with src and returns its contribution to the sum along with
// the number of dice comparisons it made.
type trial func(src game.Source) (wins int64, steps int)

func WithGoroutines(goroutines int) Option {
	return func(s *Simulator) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithSeed makes every run of the simulator reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seed = seed
		s.seeded = true
	}
}

func WithRules(rules game.Rules) Option {
	return func(s *Simulator) {
		if rules != nil {
			s.rules = rules
		}
	}
}

func WithMetrics() Option {
	return func(s *Simulator) {
		s.newCollector = metrics.NewCollector
	}
}

func NewSimulator(options ...Option) *Simulator {
	s := &Simulator{ // Default values
		goroutines:   runtime.GOMAXPROCS(0),
		rules:        game.NewStandardRules(),
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Simulator) Rules() game.Rules {
	return s.rules
}

// run splits trials into chunks, lets the workers drain them and sums the
// partial results.
func (s *Simulator) run(trials int, fn trial) (int64, metrics.SimulationMetric) {
	seed := s.seed
	if !s.seeded {
		var err error
		seed, err = NewSeed()
		if err != nil {
			panic(fmt.Sprintf("failed to draw simulation seed: %v", err))
		}
	}

	collector := s.newCollector()
	collector.Start(s.goroutines, seed)

	chunks := 0
	if trials > 0 {
		chunks = (trials + chunkSize - 1) / chunkSize
	}
	task := make(chan int, chunks)
	for i := 0; i < chunks; i++ {
		task <- i
	}
	close(task)

	partials := make(chan int64, chunks)
	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for chunk := range task {
				src := rand.New(rand.NewSource(chunkSeed(seed, chunk)))
				n := min(chunkSize, trials-chunk*chunkSize)

				var sum int64
				steps := 0
				for j := 0; j < n; j++ {
					wins, st := fn(src)
					sum += wins
					steps += st
				}

				collector.AddChunk(n)
				collector.AddSteps(steps)
				partials <- sum
			}
		}()
	}

	wg.Wait()
	close(partials)

	var total int64
	for sum := range partials {
		total += sum
	}
	return total, collector.Complete()
}

// percentage returns wins/total as a percentage, or 0 when total is not positive.
func percentage(wins, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}
