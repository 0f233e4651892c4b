package board

import "fmt"

// EmptyShipID marks a cell that hosts no ship.
const EmptyShipID = -1

func ErrOutOfBounds(r, c int) error {
	return fmt.Errorf("coordinate out of grid bounds\tr: %d\tc: %d", r, c)
}

func ErrOverlap(shipCode ShipCode, r, c int) error {
	return fmt.Errorf("placement for %s overlaps an occupied cell\tr: %d\tc: %d", shipCode, r, c)
}

func ErrShipNotFound(shipID int) error {
	return fmt.Errorf("ship with this id does not exist, id: %d", shipID)
}

// ErrInconsistentState signals a programmer error: the resolver detected a
// board/ship invariant violation (e.g. a sunk ship with positive segment
// health). This is never swallowed; callers should abort the match.
func ErrInconsistentState(reason string) error {
	return fmt.Errorf("inconsistent match state detected: %s", reason)
}
