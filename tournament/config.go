package tournament

import (
	"fmt"

	"github.com/MaoJiayang/battleship-remaster/internal/decide"
)

// Config is one point in the grid search's parameter space: alpha and
// riskAwareness, with randomness pinned to 0 (spec.md §4.8).
type Config struct {
	Alpha         float64
	RiskAwareness float64
}

func (c Config) String() string {
	return fmt.Sprintf("alpha=%.2f/risk=%.2f", c.Alpha, c.RiskAwareness)
}

// Difficulty converts a grid point into a decider difficulty record.
func (c Config) Difficulty() decide.Difficulty {
	return decide.Custom(c.Alpha, 0, c.RiskAwareness)
}

// Range is an inclusive [min, max] scalar range stepped by Step.
type Range struct {
	Min, Max, Step float64
}

// Values enumerates every value in the range, inclusive of Max (within
// floating-point tolerance).
func (r Range) Values() []float64 {
	if r.Step <= 0 {
		return []float64{r.Min}
	}
	var out []float64
	for v := r.Min; v <= r.Max+1e-9; v += r.Step {
		out = append(out, v)
	}
	return out
}

// Grid is the rectangular parameter space spec.md §4.8 describes: an
// alpha range crossed with a riskAwareness range.
type Grid struct {
	Alpha Range
	Risk  Range
}

// Configs enumerates every (alpha, risk) pair in the grid.
func (g Grid) Configs() []Config {
	alphas := g.Alpha.Values()
	risks := g.Risk.Values()
	configs := make([]Config, 0, len(alphas)*len(risks))
	for _, a := range alphas {
		for _, r := range risks {
			configs = append(configs, Config{Alpha: a, RiskAwareness: r})
		}
	}
	return configs
}

// Presets are the tournament CLI's named grid shortcuts (spec.md §6
// "Tournament CLI" --preset flag).
var Presets = map[string]Grid{
	"test": {
		Alpha: Range{Min: 0.5, Max: 0.5, Step: 1},
		Risk:  Range{Min: 0, Max: 0, Step: 1},
	},
	"quick": {
		Alpha: Range{Min: 0, Max: 1, Step: 0.5},
		Risk:  Range{Min: 0, Max: 0.4, Step: 0.4},
	},
	"default": {
		Alpha: Range{Min: 0, Max: 1, Step: 0.25},
		Risk:  Range{Min: 0, Max: 0.4, Step: 0.2},
	},
	"full": {
		Alpha: Range{Min: 0, Max: 1, Step: 0.1},
		Risk:  Range{Min: 0, Max: 0.5, Step: 0.1},
	},
}
