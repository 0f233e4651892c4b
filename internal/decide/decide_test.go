package decide

import (
	"math/rand"
	"testing"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/risk"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

func riskConfigForTest() risk.Config {
	return risk.Config{K: 2, RolloutSamples: 15, SinkThreshold: 0.2}
}

func TestDecideReturnsAnInBoundsAction(t *testing.T) {
	n := board.Size
	rng := rand.New(rand.NewSource(21))
	attackerRoster := board.NewRoster()
	defenderRoster := board.NewRoster()
	view := board.NewViewGrid(n)
	damage := board.NewDamageGrid(n)
	registry := weapon.NewRegistry()

	action := Decide(rng, Input{
		N:              n,
		AttackerView:   view,
		AttackerRoster: attackerRoster,
		DefenderRoster: defenderRoster,
		Damage:         damage,
		Registry:       registry,
		Difficulty:     Normal,
	})

	if action.R < 0 || action.R >= n || action.C < 0 || action.C >= n {
		t.Fatalf("decide returned an out-of-bounds action: %+v", action)
	}
}

func TestDecideAlwaysRandomUnderRandomnessOne(t *testing.T) {
	n := board.Size
	rng := rand.New(rand.NewSource(22))
	attackerRoster := board.NewRoster()
	defenderRoster := board.NewRoster()
	view := board.NewViewGrid(n)
	damage := board.NewDamageGrid(n)
	registry := weapon.NewRegistry()

	diff := Custom(0.5, 1.0, 0)
	for i := 0; i < 20; i++ {
		action := Decide(rng, Input{
			N:              n,
			AttackerView:   view,
			AttackerRoster: attackerRoster,
			DefenderRoster: defenderRoster,
			Damage:         damage,
			Registry:       registry,
			Difficulty:     diff,
		})
		if action.R < 0 || action.R >= n || action.C < 0 || action.C >= n {
			t.Fatalf("decide returned an out-of-bounds action: %+v", action)
		}
	}
}

func TestDecideWithRiskLookAheadStaysInBounds(t *testing.T) {
	n := board.Size
	rng := rand.New(rand.NewSource(23))
	attackerRoster := board.NewRoster()
	defenderRoster := board.NewRoster()
	attackerBoard := board.NewBoard(n)
	registry := weapon.NewRegistry()

	ship, _ := attackerRoster.Find(0)
	ship.Row, ship.Col, ship.Orientation = 0, 0, board.Horizontal
	if err := attackerBoard.PlaceShip(ship); err != nil {
		t.Fatalf("place ship: %v", err)
	}

	action := Decide(rng, Input{
		N:              n,
		AttackerView:   board.NewViewGrid(n),
		AttackerRoster: attackerRoster,
		DefenderRoster: defenderRoster,
		Damage:         board.NewDamageGrid(n),
		Registry:       registry,
		Difficulty:     Hard,
		RiskLookAhead: &RiskLookAhead{
			AttackerBoard:      attackerBoard,
			OpponentViewOfSelf: board.NewViewGrid(n),
			Config:             riskConfigForTest(),
		},
	})

	if action.R < 0 || action.R >= n || action.C < 0 || action.C >= n {
		t.Fatalf("decide returned an out-of-bounds action: %+v", action)
	}
}
