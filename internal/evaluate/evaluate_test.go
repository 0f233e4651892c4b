package evaluate

import (
	"math/rand"
	"testing"

	"github.com/MaoJiayang/battleship-remaster/internal/belief"
	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

func uniformMarginal(n int, p float64) [][]float64 {
	m := make([][]float64, n)
	for r := range m {
		m[r] = make([]float64, n)
		for c := range m[r] {
			m[r][c] = p
		}
	}
	return m
}

func baseContext(n int, alpha, currentEntropy float64, marginal [][]float64, view board.ViewGrid, damage board.DamageGrid) Context {
	return Context{
		N:              n,
		Alpha:          alpha,
		CurrentEntropy: currentEntropy,
		Marginal:       marginal,
		View:           view,
		Damage:         damage,
		AttackerRoster: board.NewRoster(),
		DefenderRoster: board.NewRoster(),
		Registry:       weapon.NewRegistry(),
	}
}

// spec.md §8: "For α = 0 ... the chosen action maximizes expected damage;
// if two actions tie on expected damage, the choice is uniform across
// them."
func TestAlphaZeroMaximizesExpectedDamageWithUniformTieBreak(t *testing.T) {
	n := board.Size
	view := board.NewViewGrid(n)
	marginal := uniformMarginal(n, 0.5)
	damage := board.NewDamageGrid(n)

	// Two untouched cells, everything else ruled out, so both AP
	// candidates have identical expected damage and must tie.
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !((r == 0 && c == 0) || (r == 0 && c == 1)) {
				view[r][c] = board.Miss
			}
		}
	}

	ctx := baseContext(n, 0, 4.0, marginal, view, damage)
	abilities := ComputeAbilities(ctx.AttackerRoster, ctx.Registry)
	actions := Enumerate(view, n, abilities)
	scored := ScoreAll(actions, ctx)

	best := scored[0].Utility
	for _, s := range scored {
		if s.Utility > best {
			best = s.Utility
		}
	}

	rng := rand.New(rand.NewSource(1))
	picks := map[board.Coordinates]int{}
	for i := 0; i < 500; i++ {
		chosen := SelectBest(rng, scored)
		if best-chosen.Utility > TieEpsilon {
			t.Fatalf("SelectBest returned a non-maximal action: %+v", chosen)
		}
		picks[board.Coordinates{R: chosen.Action.R, C: chosen.Action.C}]++
	}
	if len(picks) < 2 {
		t.Fatalf("expected ties to be broken across multiple cells, got %v", picks)
	}
}

// spec.md §8: "For α = 1 ... the chosen action maximizes information gain
// ratio."
func TestAlphaOneMaximizesInformationGainRatio(t *testing.T) {
	n := board.Size
	view := board.NewViewGrid(n)
	marginal := uniformMarginal(n, 0.5)
	damage := board.NewDamageGrid(n)

	ctx := baseContext(n, 1, belief.TotalEntropy(marginal, view, n), marginal, view, damage)
	abilities := ComputeAbilities(ctx.AttackerRoster, ctx.Registry)
	actions := Enumerate(view, n, abilities)
	scored := ScoreAll(actions, ctx)

	var bestIdx int
	for i, s := range scored {
		if s.Utility > scored[bestIdx].Utility {
			bestIdx = i
		}
	}
	best := scored[bestIdx]

	conditional := belief.ConditionalEntropyAttack(ctx.CurrentEntropy, marginal,
		ctx.Registry.Get(best.Action.Weapon).Coverage(n, best.Action.R, best.Action.C))
	wantInfoGain := ctx.CurrentEntropy - conditional
	wantUtility := wantInfoGain / ctx.CurrentEntropy

	if best.Action.Weapon != weapon.Sonar {
		if diff := best.Utility - wantUtility; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("best attack utility mismatch: got %f want %f", best.Utility, wantUtility)
		}
	}

	for _, s := range scored {
		if s.Utility > best.Utility+1e-9 {
			t.Fatalf("found an action scoring higher than the selected best: %+v > %+v", s, best)
		}
	}
}

// spec.md §8: "for a fully known board (currentEntropy = 0) the evaluator
// reduces to the AP-fallback branch."
func TestAlphaOneWithZeroEntropyFallsBackToDamageMaximization(t *testing.T) {
	n := board.Size
	view := board.NewViewGrid(n)
	marginal := uniformMarginal(n, 0)
	damage := board.NewDamageGrid(n)

	view[3][3] = board.Hit
	marginal[3][3] = 1

	ctx := baseContext(n, 1, 0, marginal, view, damage)
	abilities := ComputeAbilities(ctx.AttackerRoster, ctx.Registry)
	actions := Enumerate(view, n, abilities)
	scored := ScoreAll(actions, ctx)

	for _, s := range scored {
		if s.Action.Weapon == weapon.Sonar && s.Utility != 0 {
			t.Fatalf("sonar must carry zero utility on a fully known board, got %f", s.Utility)
		}
	}

	var bestAP Scored
	found := false
	for _, s := range scored {
		if s.Action.Weapon != weapon.Sonar {
			if !found || s.Utility > bestAP.Utility {
				bestAP = s
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected at least one non-sonar candidate")
	}
	if bestAP.Utility <= 0 {
		t.Fatalf("expected the AP/HE fallback to prefer the known-hit cell, got utility %f", bestAP.Utility)
	}
	if bestAP.Action.R != 3 || bestAP.Action.C != 3 {
		t.Fatalf("expected the fallback to target the only damageable cell, got %+v", bestAP.Action)
	}
}

func TestCommitDamageAddsPerWeaponAmounts(t *testing.T) {
	n := board.Size
	damage := board.NewDamageGrid(n)
	roster := board.NewRoster()
	registry := weapon.NewRegistry()

	CommitDamage(damage, Action{Weapon: weapon.AP, R: 5, C: 5}, roster, registry)
	if damage[5][5] == 0 {
		t.Fatal("expected AP to add damage at the target cell")
	}

	before := damage[5][5]
	CommitDamage(damage, Action{Weapon: weapon.Sonar, R: 5, C: 5}, roster, registry)
	if damage[5][5] != before {
		t.Fatal("sonar must not add any damage")
	}
}

func TestRandomActionStaysWithinBounds(t *testing.T) {
	n := board.Size
	view := board.NewViewGrid(n)
	view[0][0] = board.Miss
	abilities := Abilities{CanUseAir: true, CanUseSonar: true, APDamage: 1}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		a := RandomAction(rng, view, n, abilities)
		if a.R < 0 || a.R >= n || a.C < 0 || a.C >= n {
			t.Fatalf("random action out of bounds: %+v", a)
		}
		if view[a.R][a.C] == board.Miss {
			t.Fatalf("random action landed on a MISS cell: %+v", a)
		}
	}
}
