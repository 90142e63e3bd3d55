package simulator

import (
	"fmt"

	"oddcalc/game"
)

// Result is the tally of a simulation.
type Result struct {
	AttackerWins int `json:"attacker_wins"`
	TotalTrials  int `json:"total_trials"`
}

func NewResult(attackerWins, totalTrials int) (Result, error) {
	if totalTrials <= 0 {
		return Result{}, fmt.Errorf("%w: total trials must be positive, got %d", game.ErrInvalidArgument, totalTrials)
	}
	if attackerWins < 0 || attackerWins > totalTrials {
		return Result{}, fmt.Errorf("%w: %d wins out of %d trials", game.ErrInvalidArgument, attackerWins, totalTrials)
	}
	return Result{AttackerWins: attackerWins, TotalTrials: totalTrials}, nil
}

// Percent is the attacker win rate in [0, 100].
func (r Result) Percent() float64 {
	if r.TotalTrials == 0 {
		return 0
	}
	return float64(r.AttackerWins) / float64(r.TotalTrials) * 100
}

// ToPercent formats Percent with two fractional digits.
func (r Result) ToPercent() string {
	return fmt.Sprintf("%.2f", r.Percent())
}

func (r Result) String() string {
	return fmt.Sprintf("attacker has %s%% chance of winning", r.ToPercent())
}
