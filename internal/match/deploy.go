package match

import (
	"math/rand"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/deploy"
)

// Deploy places one side's full roster using the sparse random policy
// (spec.md §6 "deploy(match, side) → []Ship").
func (m *Match) Deploy(rng *rand.Rand, side Side) ([]*board.Ship, error) {
	if err := deploy.Deploy(rng, m.rosters[side], m.boards[side]); err != nil {
		return nil, err
	}
	return m.rosters[side].Ships, nil
}

// PlaceShip manually places a single ship, bypassing the random policy
// (spec.md §6 "the host may instead call placeShip(...)").
func (m *Match) PlaceShip(side Side, shipID, r, c int, orientation board.Orientation) error {
	roster := m.rosters[side]
	ship, err := roster.Find(shipID)
	if err != nil {
		return ErrShipNotFound(shipID)
	}
	ship.Row, ship.Col, ship.Orientation = r, c, orientation
	return m.boards[side].PlaceShip(ship)
}
