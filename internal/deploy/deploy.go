package deploy

import (
	"fmt"
	"math/rand"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
)

// ErrNoLegalPlacement means a ship ran out of space entirely, which only
// happens on a board too small or too crowded for the fixed roster.
func ErrNoLegalPlacement(code board.ShipCode) error {
	return fmt.Errorf("deploy: no legal placement remains for %s", code)
}

// shuffleOrder returns a Fisher-Yates shuffled permutation of roster
// indices (spec.md §4.7 "Shuffle the ship-type list").
func shuffleOrder(rng *rand.Rand, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// Deploy places every ship in roster onto b using the random-but-sparse
// placement policy: a shuffled placement order, a Euclidean spacing
// search against already-placed ships with threshold stepping, and a
// uniform-random first placement (spec.md §4.7).
func Deploy(rng *rand.Rand, roster *board.Roster, b *board.Board) error {
	order := shuffleOrder(rng, len(roster.Ships))
	occupied := make(map[board.Coordinates]bool)
	var occupiedCells []board.Coordinates

	for i, idx := range order {
		ship := roster.Ships[idx]
		candidates := enumerateLegalPlacements(b.N, ship.Length, occupied)
		if len(candidates) == 0 {
			return ErrNoLegalPlacement(ship.Code)
		}

		var chosen candidate
		if i == 0 {
			chosen = candidates[rng.Intn(len(candidates))]
		} else {
			chosen = choosePlacement(rng, candidates, occupiedCells)
		}

		ship.Row, ship.Col, ship.Orientation = chosen.Row, chosen.Col, chosen.Orientation
		if err := b.PlaceShip(ship); err != nil {
			return err
		}
		for _, c := range chosen.Cells {
			occupied[c] = true
		}
		occupiedCells = append(occupiedCells, chosen.Cells...)
	}
	return nil
}
