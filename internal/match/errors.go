package match

import "fmt"

// ErrInvalidTarget surfaces a resolve() call against a cell the weapon's
// own isValidTarget rejects (spec.md §7 error kind 2).
func ErrInvalidTarget(side Side, r, c int) error {
	return fmt.Errorf("match: side %s fired at an invalid target (%d,%d)", side, r, c)
}

// ErrMatchAlreadyFinished is returned by Resolve when the match's Winner
// is already set.
func ErrMatchAlreadyFinished() error {
	return fmt.Errorf("match: already finished")
}

// ErrShipNotFound wraps a manual placeShip call against an unknown id.
func ErrShipNotFound(shipID int) error {
	return fmt.Errorf("match: ship id %d does not exist on this side", shipID)
}
