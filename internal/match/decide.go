package match

import (
	"math/rand"

	"github.com/MaoJiayang/battleship-remaster/internal/decide"
	"github.com/MaoJiayang/battleship-remaster/internal/evaluate"
	"github.com/MaoJiayang/battleship-remaster/internal/risk"
)

// Decide runs the belief engine, evaluator, and (when the acting side's
// riskAwareness is above zero) the risk roll-out, returning the chosen
// action (spec.md §6 "decide(match, side) → Action"). Risk look-ahead
// uses the opponent's current view of the acting side's own board, which
// is always available inside a single Match.
func (m *Match) Decide(rng *rand.Rand, side Side) evaluate.Action {
	opponent := side.Other()
	in := decide.Input{
		N:              m.N,
		AttackerView:   m.views[side],
		AttackerRoster: m.rosters[side],
		DefenderRoster: m.rosters[opponent],
		Damage:         m.damage[side],
		Registry:       m.Registry,
		Difficulty:     m.Difficulty[side],
	}
	if m.Difficulty[side].RiskAwareness > 0 {
		in.RiskLookAhead = &decide.RiskLookAhead{
			AttackerBoard:      m.boards[side],
			OpponentViewOfSelf: m.views[opponent],
			Config:             risk.DefaultConfig(),
		}
	}
	return decide.Decide(rng, in)
}
