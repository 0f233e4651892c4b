package risk

import (
	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/evaluate"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// rosterWithoutShip returns a shallow simulation of attackerRoster as if
// shipID had already been sunk, for computing abilitiesAfterLoss without
// mutating the real roster (spec.md §4.5 "simulate abilitiesAfterLoss").
func rosterWithoutShip(attackerRoster *board.Roster, shipID int) *board.Roster {
	ships := make([]*board.Ship, len(attackerRoster.Ships))
	for i, s := range attackerRoster.Ships {
		copied := *s
		if copied.ID == shipID {
			copied.Sunk = true
		}
		ships[i] = &copied
	}
	return &board.Roster{Ships: ships}
}

// UtilityLoss computes U(a, currentAbilities) - U(a, afterAbilities) for a
// single at-risk ship, per spec.md §4.5: when the action becomes
// unavailable under afterAbilities, the loss is the full current utility.
func UtilityLoss(action evaluate.Action, current evaluate.Scored, ctx evaluate.Context, afterRoster *board.Roster, registry *weapon.Registry) float64 {
	w := registry.Get(action.Weapon)
	if !w.IsAvailable(afterRoster) {
		return current.Utility
	}

	afterCtx := ctx
	afterCtx.AttackerRoster = afterRoster
	after := evaluate.Score(action, afterCtx)
	return current.Utility - after.Utility
}

// NormRiskBonus computes spec.md §4.5's normalized risk bonus for a single
// candidate action: the sink-probability-weighted average utility loss
// across every at-risk attacker ship (sinkProbability >= cfg.SinkThreshold).
func NormRiskBonus(action evaluate.Action, current evaluate.Scored, ctx evaluate.Context, sinkProb map[int]float64, registry *weapon.Registry, cfg Config) float64 {
	total := 0.0
	n := 0
	for shipID, p := range sinkProb {
		if p < cfg.SinkThreshold {
			continue
		}
		n++
		afterRoster := rosterWithoutShip(ctx.AttackerRoster, shipID)
		loss := UtilityLoss(action, current, ctx, afterRoster, registry)
		total += p * loss
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// FinalScore blends a candidate's base utility with its risk bonus
// (spec.md §4.5 "Final score").
func FinalScore(utility, riskAwareness, normRiskBonus float64) float64 {
	return utility * (1 + riskAwareness*normRiskBonus)
}
