// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines sharing a simulation.
const GO_ROUTINES = 8

// SIMULATIONS defines the number of trials per simulation.
const SIMULATIONS = 100_000

// SWEEP_DEFENDERS is the fixed defender count of a sweep.
const SWEEP_DEFENDERS = 10

// SWEEP_MAX_ATTACKERS is the largest attacker count of a sweep.
const SWEEP_MAX_ATTACKERS = 30
