package risk

import (
	"github.com/MaoJiayang/battleship-remaster/internal/evaluate"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// ApplyRiskBonus re-scores a slate of already-evaluated actions with
// spec.md §4.5's final-score formula, replacing base utility with
// finalScore for the decider's final tie-break pass.
func ApplyRiskBonus(scored []evaluate.Scored, ctx evaluate.Context, sinkProb map[int]float64, registry *weapon.Registry, riskAwareness float64, cfg Config) []evaluate.Scored {
	if riskAwareness <= 0 || len(sinkProb) == 0 {
		return scored
	}

	out := make([]evaluate.Scored, len(scored))
	for i, s := range scored {
		bonus := NormRiskBonus(s.Action, s, ctx, sinkProb, registry, cfg)
		out[i] = evaluate.Scored{
			Action:         s.Action,
			Utility:        FinalScore(s.Utility, riskAwareness, bonus),
			ExpectedDamage: s.ExpectedDamage,
			InfoGain:       s.InfoGain,
		}
	}
	return out
}
