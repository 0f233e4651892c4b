package evaluate

import "math/rand"

// TieEpsilon is how close two utilities must be to be considered tied
// (spec.md §4.4 "Tie-break").
const TieEpsilon = 1e-6

// SelectBest returns the best-scored action, breaking ties uniformly at
// random among every action within TieEpsilon of the maximum utility
// (spec.md §8: "if two actions tie on expected damage, the choice is
// uniform across them").
func SelectBest(rng *rand.Rand, scored []Scored) Scored {
	best := scored[0].Utility
	for _, s := range scored[1:] {
		if s.Utility > best {
			best = s.Utility
		}
	}

	var tied []Scored
	for _, s := range scored {
		if best-s.Utility <= TieEpsilon {
			tied = append(tied, s)
		}
	}
	return tied[rng.Intn(len(tied))]
}
