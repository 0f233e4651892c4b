package risk

import (
	"math/rand"

	"github.com/MaoJiayang/battleship-remaster/internal/belief"
	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/evaluate"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// Config tunes the k-step self-roll-out (spec.md §4.5).
type Config struct {
	K              int     // look-ahead depth, default 5
	RolloutSamples int     // belief-state sample count per step, default 50
	SinkThreshold  float64 // minimum sinkProbability a ship needs to count toward the risk bonus, default 0.2
}

// DefaultConfig mirrors spec.md §4.5's stated defaults.
func DefaultConfig() Config {
	return Config{K: 5, RolloutSamples: 50, SinkThreshold: 0.2}
}

func cloneView(view board.ViewGrid, n int) board.ViewGrid {
	clone := board.NewViewGrid(n)
	for r := 0; r < n; r++ {
		copy(clone[r], view[r])
	}
	return clone
}

func shipSpecs(roster *board.Roster) []belief.ShipSpec {
	specs := make([]belief.ShipSpec, 0, len(roster.Ships))
	for _, s := range roster.AliveShips() {
		specs = append(specs, belief.ShipSpec{ID: s.ID, Length: s.Length})
	}
	return specs
}

// SinkProbabilities runs the symmetric k-step roll-out from the player's
// point of view against the AI's board, returning, per still-alive AI
// ship id, the estimated probability it sinks within the look-ahead
// window (spec.md §4.5 "Roll-out").
func SinkProbabilities(rng *rand.Rand, aiView board.ViewGrid, n int, aiBoard *board.Board, aiRoster, playerRoster *board.Roster, registry *weapon.Registry, alpha float64, cfg Config) map[int]float64 {
	view := cloneView(aiView, n)
	threatDamage := make(map[int]float64, len(aiRoster.Ships))
	zeroDamage := board.NewDamageGrid(n)

	playerAbilities := evaluate.ComputeAbilities(playerRoster, registry)

	for step := 0; step < cfg.K; step++ {
		constraints := belief.DeriveConstraints(view, n)
		specs := shipSpecs(aiRoster)
		if len(specs) == 0 {
			break
		}
		bs := belief.Build(rng, specs, n, constraints, cfg.RolloutSamples)
		marginal := bs.MarginalGrid(view)
		currentEntropy := belief.TotalEntropy(marginal, view, n)

		actions := evaluate.Enumerate(view, n, playerAbilities)
		if len(actions) == 0 {
			break
		}

		ctx := evaluate.Context{
			N:              n,
			Alpha:          alpha,
			CurrentEntropy: currentEntropy,
			Marginal:       marginal,
			View:           view,
			Damage:         zeroDamage,
			AttackerRoster: playerRoster,
			DefenderRoster: aiRoster,
			Registry:       registry,
		}
		scored := evaluate.ScoreAll(actions, ctx)
		chosen := evaluate.SelectBest(rng, scored)

		w := registry.Get(chosen.Action.Weapon)
		coverage := w.Coverage(n, chosen.Action.R, chosen.Action.C)
		dmg := w.Damage(playerRoster)

		for _, cell := range coverage {
			occupant := aiBoard.At(cell.R, cell.C)
			if occupant.ShipID == board.EmptyShipID {
				continue
			}
			ship, err := aiRoster.Find(occupant.ShipID)
			if err != nil || ship.Sunk {
				continue
			}
			threatDamage[ship.ID] += marginal[cell.R][cell.C] * float64(dmg)
		}

		for _, cell := range coverage {
			if view[cell.R][cell.C] != board.Unknown && view[cell.R][cell.C] != board.Suspect {
				continue
			}
			if marginal[cell.R][cell.C] > 0.5 {
				view[cell.R][cell.C] = board.Hit
			} else {
				view[cell.R][cell.C] = board.Miss
			}
		}
	}

	sinkProb := make(map[int]float64, len(aiRoster.Ships))
	for _, s := range aiRoster.Ships {
		if s.Sunk {
			continue
		}
		totalHP := s.TotalHP()
		if totalHP <= 0 {
			sinkProb[s.ID] = 1
			continue
		}
		p := threatDamage[s.ID] / float64(totalHP)
		if p > 1 {
			p = 1
		}
		sinkProb[s.ID] = p
	}
	return sinkProb
}
