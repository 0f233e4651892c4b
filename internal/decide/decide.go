package decide

import (
	"log"
	"math/rand"

	"github.com/MaoJiayang/battleship-remaster/internal/belief"
	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/evaluate"
	"github.com/MaoJiayang/battleship-remaster/internal/risk"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// Input bundles everything one decide() call needs (spec.md §4.6 "Call
// the decider with the attacker's view grid, the defender's ship roster
// ..., the difficulty, and optionally the defender's view of the
// attacker's board").
type Input struct {
	N              int
	AttackerView   board.ViewGrid
	AttackerRoster *board.Roster
	DefenderRoster *board.Roster
	Damage         board.DamageGrid
	Registry       *weapon.Registry
	Difficulty     Difficulty

	// RiskLookAhead is optional. When nil, riskAwareness is ignored even
	// if the difficulty sets it above zero (the caller has no visibility
	// into the opponent's board to roll out against).
	RiskLookAhead *RiskLookAhead
}

// RiskLookAhead is the extra state a k-step self-roll-out needs: the
// attacker's own true board and the opponent's current view of that same
// board (spec.md §4.5's "player-visible observation grid of the AI's
// board").
type RiskLookAhead struct {
	AttackerBoard       *board.Board
	OpponentViewOfSelf  board.ViewGrid
	Config              risk.Config
}

// Decide runs the belief engine, evaluator, and (if configured) the risk
// roll-out, returning the chosen action (spec.md §4.4/§4.5/§6). It never
// mutates Damage; the caller commits that via evaluate.CommitDamage once
// the action has actually been resolved.
func Decide(rng *rand.Rand, in Input) evaluate.Action {
	abilities := evaluate.ComputeAbilities(in.AttackerRoster, in.Registry)

	if rng.Float64() < in.Difficulty.Randomness {
		return evaluate.RandomAction(rng, in.AttackerView, in.N, abilities)
	}

	constraints := belief.DeriveConstraints(in.AttackerView, in.N)
	specs := shipSpecs(in.DefenderRoster)
	bs := belief.Build(rng, specs, in.N, constraints, belief.DefaultLiveSamples)

	if bs.Exhausted() {
		log.Printf("decide: belief sampler exhausted, falling back to random play")
		return evaluate.RandomAction(rng, in.AttackerView, in.N, abilities)
	}

	marginal := bs.MarginalGrid(in.AttackerView)
	currentEntropy := belief.TotalEntropy(marginal, in.AttackerView, in.N)

	actions := evaluate.Enumerate(in.AttackerView, in.N, abilities)
	if len(actions) == 0 {
		return evaluate.RandomAction(rng, in.AttackerView, in.N, abilities)
	}

	ctx := evaluate.Context{
		N:              in.N,
		Alpha:          in.Difficulty.Alpha,
		CurrentEntropy: currentEntropy,
		Marginal:       marginal,
		View:           in.AttackerView,
		Damage:         in.Damage,
		AttackerRoster: in.AttackerRoster,
		DefenderRoster: in.DefenderRoster,
		Registry:       in.Registry,
	}
	scored := evaluate.ScoreAll(actions, ctx)

	if in.Difficulty.RiskAwareness > 0 && in.RiskLookAhead != nil {
		cfg := in.RiskLookAhead.Config
		sinkProb := risk.SinkProbabilities(rng, in.RiskLookAhead.OpponentViewOfSelf, in.N,
			in.RiskLookAhead.AttackerBoard, in.AttackerRoster, in.DefenderRoster, in.Registry,
			in.Difficulty.Alpha, cfg)
		scored = risk.ApplyRiskBonus(scored, ctx, sinkProb, in.Registry, in.Difficulty.RiskAwareness, cfg)
	}

	return evaluate.SelectBest(rng, scored).Action
}

func shipSpecs(roster *board.Roster) []belief.ShipSpec {
	specs := make([]belief.ShipSpec, 0, len(roster.Ships))
	for _, s := range roster.AliveShips() {
		specs = append(specs, belief.ShipSpec{ID: s.ID, Length: s.Length})
	}
	return specs
}
