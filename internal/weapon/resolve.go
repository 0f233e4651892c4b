package weapon

import "github.com/MaoJiayang/battleship-remaster/internal/board"

// Context is the shared, mutable-by-reference state a resolver acts on.
// Resolvers are pure with respect to the outside world: they read the
// attacker's roster, mutate the defender's board and roster, and return an
// owned event slice — they never call back into a foreign sink
// (spec.md §9 "Mutable context vs pure events").
type Context struct {
	AttackerRoster *board.Roster
	DefenderBoard  *board.Board
	DefenderRoster *board.Roster

	// IsPlayer distinguishes a human-controlled attacker from a
	// machine-controlled one; resolvers use it only to choose log classes.
	IsPlayer bool

	// AttackerView is the attacker's current fog-of-war view of the
	// defender, supplied read-only by the caller. Sonar is the only
	// weapon that consults it (to find prior SUSPECT marks and decide
	// which cells are still genuinely unknown); AP and HE ignore it.
	// Resolvers never mutate it directly — they report view-state
	// transitions as CellUpdate events and the caller applies them.
	AttackerView board.ViewGrid
}

func logClass(isPlayer bool) string {
	if isPlayer {
		return "player"
	}
	return "ai"
}

// resolveHit implements the atomic semantics every damage-dealing weapon
// shares (spec.md §4.2). dmg may be 0 (sonar's non-lethal reveal).
func resolveHit(ctx *Context, r, c, dmg int) []Event {
	b := ctx.DefenderBoard
	if !b.InBounds(r, c) {
		return nil
	}

	cell := b.At(r, c)
	if cell.Hit && cell.ShipID == board.EmptyShipID {
		return nil // already a confirmed miss
	}

	cell.Hit = true

	if cell.ShipID == board.EmptyShipID {
		return []Event{CellUpdate{R: r, C: c, State: board.Miss}}
	}

	ship, err := ctx.DefenderRoster.Find(cell.ShipID)
	if err != nil {
		panic(board.ErrInconsistentState("cell references a ship id absent from the defender roster"))
	}

	idx := cell.SegmentIndex
	if idx < 0 || idx >= len(ship.Segments) {
		panic(board.ErrInconsistentState("cell segment index out of range for its ship"))
	}
	if ship.Segments[idx] <= 0 {
		return nil // idempotent over an already-destroyed segment
	}

	newHP := ship.Segments[idx] - dmg
	ship.Segments[idx] = newHP

	events := make([]Event, 0, 4)
	if newHP <= 0 {
		events = append(events, CellUpdate{R: r, C: c, State: board.Destroyed})
	} else {
		events = append(events, CellUpdate{R: r, C: c, State: board.Hit})
	}
	events = append(events, ShipUpdate{ShipID: ship.ID, SegmentIndex: idx, NewHP: newHP})

	if ship.IsSunk() && !ship.Sunk {
		ship.Sunk = true
		events = append(events, ShipUpdate{ShipID: ship.ID, SegmentIndex: -1, NewHP: 0, Sunk: true})
		events = append(events, LogEntry{
			Message: string(ship.Code) + " has been sunk",
			Class:   logClass(ctx.IsPlayer),
		})
	}

	return events
}

// resolveMultiHit iterates resolveHit across a cell list, concatenating
// events in order and aggregating the set of ship ids that sank during the
// call (spec.md §4.2 "bulk variant").
func resolveMultiHit(ctx *Context, cells []board.Coordinates, dmg int) ([]Event, []int) {
	var all []Event
	for _, cell := range cells {
		all = append(all, resolveHit(ctx, cell.R, cell.C, dmg)...)
	}
	return all, sunkShips(all)
}
