package belief

import (
	"math/rand"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
)

// DefaultLiveSamples and DefaultRolloutSamples are the two sample-count
// presets spec.md §4.3/§4.5 name: M=700 for a live decision, 50 for an
// internal risk roll-out step.
const (
	DefaultLiveSamples    = 700
	DefaultRolloutSamples = 50

	// attemptBudgetFactor bounds the sampler at 20*M attempts before
	// giving up (spec.md §4.3 "Producing the sample set").
	attemptBudgetFactor = 20
)

// BeliefState is a finite multiset of admissible configurations, built
// fresh per decision and dropped when the decision returns (spec.md §9
// "Belief state lifetime").
type BeliefState struct {
	N       int
	Samples []Configuration
}

// Build draws up to m accepted samples (hard budget 20*m attempts); if the
// budget runs out with at least one accepted sample, it pads by
// re-sampling with replacement so every downstream computation still sees
// m samples (spec.md: "oversampling is preferable to under-weighting rare
// constraints"). If zero samples were ever accepted, Build returns an
// exhausted BeliefState (spec.md §7 "Exhausted sampler") whose marginal
// grid is all zero.
func Build(rng *rand.Rand, ships []ShipSpec, n int, c Constraints, m int) *BeliefState {
	if len(ships) == 0 || m <= 0 {
		return &BeliefState{N: n}
	}

	accepted := make([]Configuration, 0, m)
	budget := attemptBudgetFactor * m
	for attempt := 0; attempt < budget && len(accepted) < m; attempt++ {
		cfg, ok := SampleConfiguration(rng, ships, n, c)
		if ok {
			accepted = append(accepted, cfg)
		}
	}

	if len(accepted) == 0 {
		return &BeliefState{N: n} // exhausted sampler
	}

	for len(accepted) < m {
		accepted = append(accepted, accepted[rng.Intn(len(accepted))])
	}

	return &BeliefState{N: n, Samples: accepted}
}

// Exhausted reports whether the sampler never found a single admissible
// configuration (spec.md §7 error kind 3).
func (bs *BeliefState) Exhausted() bool {
	return len(bs.Samples) == 0
}

// MarginalGrid computes p(r,c) = fraction of samples occupying (r,c),
// then clamps per view state: 1 for HIT, 0 for MISS/DESTROYED/SUNK
// (spec.md §4.3).
func (bs *BeliefState) MarginalGrid(view board.ViewGrid) [][]float64 {
	grid := make([][]float64, bs.N)
	for r := range grid {
		grid[r] = make([]float64, bs.N)
	}

	if len(bs.Samples) > 0 {
		for r := 0; r < bs.N; r++ {
			for c := 0; c < bs.N; c++ {
				coord := board.Coordinates{R: r, C: c}
				count := 0
				for _, cfg := range bs.Samples {
					if cfg.occupies(coord) {
						count++
					}
				}
				grid[r][c] = float64(count) / float64(len(bs.Samples))
			}
		}
	}

	for r := 0; r < bs.N; r++ {
		for c := 0; c < bs.N; c++ {
			switch view[r][c] {
			case board.Hit:
				grid[r][c] = 1
			case board.Miss, board.Destroyed, board.SunkState:
				grid[r][c] = 0
			}
		}
	}

	return grid
}
