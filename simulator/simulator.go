package simulator

import (
	"context"
	"fmt"

	"oddcalc/combat"
	"oddcalc/game"
	"oddcalc/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Resolver fights one battle and reports whether the attacker won.
type Resolver interface {
	DoCombat(attacker, defender game.Combatant) (bool, error)
}

type Option func(s *Simulator)

type Simulator struct {
	goroutines int
	trials     int
	// Each Simulate call gets its own collector, so one Simulator can serve
	// concurrent calls.
	newCollector func() Collector
}

func WithTrials(trials int) Option {
	return func(s *Simulator) {
		s.trials = trials
	}
}

func WithMetrics() Option {
	return func(s *Simulator) {
		s.newCollector = NewCollector
	}
}

// NewSimulator returns a simulator that splits its trials across goroutines
// workers. One worker or fewer runs them sequentially.
func NewSimulator(goroutines int, options ...Option) *Simulator {
	s := &Simulator{ // Default values
		goroutines:   goroutines,
		trials:       meta.SIMULATIONS,
		newCollector: NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Simulate resolves the same battle repeatedly and tallies attacker wins.
// Every trial starts from the given combatants.
func (s *Simulator) Simulate(resolver Resolver, attacker, defender game.Combatant) (Result, Metric, error) {
	if s.trials <= 0 {
		return Result{}, Metric{}, fmt.Errorf("%w: trials must be positive, got %d", game.ErrInvalidArgument, s.trials)
	}

	if l, ok := resolver.(interface{ Log() *combat.Log }); ok && l.Log() != nil && s.goroutines > 1 {
		log.Warn().Msg("event log is shared by parallel trials, entries may interleave")
	}
	log.Debug().Msgf("simulating %d trials of %s against %s on %d goroutines", s.trials, attacker, defender, s.goroutines)

	metrics := s.newCollector()
	metrics.Start(max(s.goroutines, 1))
	var wins int
	var err error
	if s.goroutines <= 1 {
		wins, err = s.sequential(metrics, resolver, attacker, defender)
	} else {
		wins, err = s.parallel(metrics, resolver, attacker, defender)
	}
	metric := metrics.Complete()
	if err != nil {
		return Result{}, metric, err
	}

	result, err := NewResult(wins, s.trials)
	if err != nil {
		return Result{}, metric, err
	}
	log.Debug().Msgf("completed simulation: %s", result)
	return result, metric, nil
}

func (s *Simulator) sequential(metrics Collector, resolver Resolver, attacker, defender game.Combatant) (int, error) {
	return run(context.Background(), metrics, resolver, attacker, defender, 0, s.trials)
}

func (s *Simulator) parallel(metrics Collector, resolver Resolver, attacker, defender game.Combatant) (int, error) {
	workers := min(s.goroutines, s.trials)
	partials := make([]int, workers)

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		start, end := partition(s.trials, workers, w)
		g.Go(func() error {
			wins, err := run(ctx, metrics, resolver, attacker, defender, start, end)
			partials[w] = wins
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, wins := range partials {
		total += wins
	}
	return total, nil
}

// run resolves trials [start, end) and stops early once ctx is cancelled by
// a failing sibling worker.
func run(ctx context.Context, metrics Collector, resolver Resolver, attacker, defender game.Combatant, start, end int) (int, error) {
	wins := 0
	for i := start; i < end; i++ {
		if ctx.Err() != nil {
			return wins, ctx.Err()
		}
		won, err := resolver.DoCombat(attacker, defender)
		if err != nil {
			return wins, fmt.Errorf("trial %d: %w", i, err)
		}
		if won {
			wins++
		}
		metrics.AddTrial(won)
	}
	return wins, nil
}

// partition returns the half-open trial range of worker i out of parts.
func partition(total, parts, i int) (start, end int) {
	return i * total / parts, (i + 1) * total / parts
}
