package experiments

import (
	"fmt"

	"oddcalc/combat"
	"oddcalc/dice"
	"oddcalc/game"
	"oddcalc/simulator"

	"github.com/rs/zerolog/log"
)

// SweepConfig describes a run of attackers 1..MaxAttackers against a fixed
// number of defenders.
type SweepConfig struct {
	Defenders    int  `json:"defenders"`
	MaxAttackers int  `json:"maxAttackers"`
	Trials       int  `json:"trials"`
	Goroutines   int  `json:"goroutines"`
	Fort         bool `json:"fort"`
	Ark          bool `json:"ark"`
}

type Point struct {
	Attackers int
	Defenders int
	simulator.Result
	Metric simulator.Metric
}

// RunSweep simulates every attacker count in turn. A nil src uses the
// process-wide dice source.
func RunSweep(cfg SweepConfig, src dice.Source) ([]Point, error) {
	if cfg.MaxAttackers < 1 {
		return nil, fmt.Errorf("%w: max attackers must be at least 1, got %d", game.ErrInvalidArgument, cfg.MaxAttackers)
	}
	if cfg.Defenders < 0 {
		return nil, fmt.Errorf("%w: negative defenders %d", game.ErrInvalidArgument, cfg.Defenders)
	}

	calc := combat.NewCalculator(
		combat.WithFortification(cfg.Fort),
		combat.WithCounterFortification(cfg.Ark),
		combat.WithSource(src),
	)
	sim := simulator.NewSimulator(cfg.Goroutines, simulator.WithTrials(cfg.Trials), simulator.WithMetrics())
	defender := game.Units{Count: cfg.Defenders}

	log.Info().Msgf("starting sweep of 1..%d attackers against %d defenders...", cfg.MaxAttackers, cfg.Defenders)

	points := make([]Point, 0, cfg.MaxAttackers)
	for attackers := 1; attackers <= cfg.MaxAttackers; attackers++ {
		result, metric, err := sim.Simulate(calc, game.Units{Count: attackers}, defender)
		if err != nil {
			return nil, fmt.Errorf("sweep at %d attackers: %w", attackers, err)
		}
		points = append(points, Point{
			Attackers: attackers,
			Defenders: cfg.Defenders,
			Result:    result,
			Metric:    metric,
		})
		log.Debug().Msgf("completed %d attackers: %s%%", attackers, result.ToPercent())
	}

	log.Info().Msg("completed sweep")
	return points, nil
}
