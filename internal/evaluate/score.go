package evaluate

import (
	"github.com/MaoJiayang/battleship-remaster/internal/belief"
	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// EffectiveDamage bounds a strike's damage by the defender's estimated
// remaining health at that cell, deliberately ignorant of the true hidden
// segment health (spec.md §4.4, §9 "Damage-dealt grid vs hidden truth").
func EffectiveDamage(weaponDamage, maxAliveMaxHP, damageDealt int) float64 {
	estimatedRemaining := maxAliveMaxHP - damageDealt
	if estimatedRemaining < 0 {
		estimatedRemaining = 0
	}
	if weaponDamage < estimatedRemaining {
		return float64(weaponDamage)
	}
	return float64(estimatedRemaining)
}

// ExpectedDamage sums p(r,c) * effectiveDamage(r,c) over an action's
// coverage (spec.md §4.4).
func ExpectedDamage(coverage []board.Coordinates, weaponDamage, maxAliveMaxHP int, marginal [][]float64, damage board.DamageGrid) float64 {
	total := 0.0
	for _, cell := range coverage {
		eff := EffectiveDamage(weaponDamage, maxAliveMaxHP, damage[cell.R][cell.C])
		total += marginal[cell.R][cell.C] * eff
	}
	return total
}

// Context bundles everything Score needs that isn't the action itself.
type Context struct {
	N              int
	Alpha          float64
	CurrentEntropy float64
	Marginal       [][]float64
	View           board.ViewGrid
	Damage         board.DamageGrid
	AttackerRoster *board.Roster
	DefenderRoster *board.Roster
	Registry       *weapon.Registry
}

// Score computes the unified utility for one candidate action (spec.md
// §4.4 "Unified utility"): a pure information-gain ratio for SONAR, an
// alpha-blend of normalized information gain and normalized expected
// damage for AP/HE.
func Score(action Action, ctx Context) Scored {
	w := ctx.Registry.Get(action.Weapon)
	coverage := w.Coverage(ctx.N, action.R, action.C)

	if action.Weapon == weapon.Sonar {
		conditional := belief.ConditionalEntropySonar(ctx.CurrentEntropy, ctx.Marginal, ctx.View, board.Coordinates{R: action.R, C: action.C}, coverage)
		infoGain := ctx.CurrentEntropy - conditional
		utility := 0.0
		if ctx.CurrentEntropy > belief.Epsilon {
			utility = ctx.Alpha * (infoGain / ctx.CurrentEntropy)
		}
		return Scored{Action: action, Utility: utility, ExpectedDamage: 0, InfoGain: infoGain}
	}

	conditional := belief.ConditionalEntropyAttack(ctx.CurrentEntropy, ctx.Marginal, coverage)
	infoGain := ctx.CurrentEntropy - conditional

	maxAliveMaxHP := ctx.DefenderRoster.MaxAliveMaxHP()
	dmg := w.Damage(ctx.AttackerRoster)
	expectedDamage := ExpectedDamage(coverage, dmg, maxAliveMaxHP, ctx.Marginal, ctx.Damage)

	weaponMax := w.MaxDamage(ctx.AttackerRoster)
	normDamage := 0.0
	if weaponMax > 0 {
		normDamage = expectedDamage / float64(weaponMax)
	}

	// A fully known board carries no information to gain: the blend
	// degenerates into pure expected-damage maximization regardless of
	// alpha rather than collapsing every action's utility to zero.
	if ctx.CurrentEntropy <= belief.Epsilon {
		return Scored{Action: action, Utility: normDamage, ExpectedDamage: expectedDamage, InfoGain: 0}
	}

	normInfoGain := infoGain / ctx.CurrentEntropy
	utility := ctx.Alpha*normInfoGain + (1-ctx.Alpha)*normDamage
	return Scored{Action: action, Utility: utility, ExpectedDamage: expectedDamage, InfoGain: infoGain}
}

// ScoreAll scores every candidate action under the same context.
func ScoreAll(actions []Action, ctx Context) []Scored {
	scored := make([]Scored, len(actions))
	for i, a := range actions {
		scored[i] = Score(a, ctx)
	}
	return scored
}
