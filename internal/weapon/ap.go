package weapon

import "github.com/MaoJiayang/battleship-remaster/internal/board"

// apWeapon is the main gun: always available, single-cell damage that
// scales with the attacker's surviving fleet.
//
// Open question (spec.md §9): two damage tables appear in the source, one
// giving SS 3 and the other giving SS 2. This implementation adopts the
// table spec.md itself says it adopts: BB alive => 3, else SS-or-CL alive
// => 2, else 1.
type apWeapon struct{}

func (apWeapon) Kind() Kind    { return AP }
func (apWeapon) Label() string { return "Main Gun" }

func (apWeapon) IsAvailable(attackerRoster *board.Roster) bool { return true }

func (apWeapon) Damage(attackerRoster *board.Roster) int {
	if attackerRoster.HasAlive(board.BB) {
		return 3
	}
	if attackerRoster.HasAlive(board.SS) || attackerRoster.HasAlive(board.CL) {
		return 2
	}
	return 1
}

func (w apWeapon) MaxDamage(attackerRoster *board.Roster) int {
	return w.Damage(attackerRoster)
}

func (apWeapon) Coverage(n, r, c int) []board.Coordinates {
	if r < 0 || r >= n || c < 0 || c >= n {
		return nil
	}
	return []board.Coordinates{{R: r, C: c}}
}

func (apWeapon) IsValidTarget(ctx *Context, r, c int) bool {
	b := ctx.DefenderBoard
	if !b.InBounds(r, c) {
		return false
	}
	cell := b.At(r, c)
	if cell.Hit && cell.ShipID == board.EmptyShipID {
		return false // confirmed miss
	}
	if cell.ShipID != board.EmptyShipID {
		ship, err := ctx.DefenderRoster.Find(cell.ShipID)
		if err == nil && ship.Segments[cell.SegmentIndex] <= 0 {
			return false // already-destroyed segment
		}
	}
	return true
}

func (w apWeapon) Resolve(ctx *Context, r, c int) ([]Event, []int) {
	return resolveMultiHit(ctx, []board.Coordinates{{R: r, C: c}}, w.Damage(ctx.AttackerRoster))
}
