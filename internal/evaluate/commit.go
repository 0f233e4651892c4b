package evaluate

import (
	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// CommitDamage updates the attacker's damage-dealt grid for a chosen
// action (spec.md §4.3 "the chosen action is then committed by updating
// the damage-dealt grid"): AP adds its per-cell damage at the single
// target, HE adds 1 at each of its covered cells, SONAR adds nothing since
// it deals no damage.
func CommitDamage(damage board.DamageGrid, action Action, attackerRoster *board.Roster, registry *weapon.Registry) {
	if action.Weapon == weapon.Sonar {
		return
	}
	w := registry.Get(action.Weapon)
	dmg := w.Damage(attackerRoster)
	for _, cell := range w.Coverage(len(damage), action.R, action.C) {
		damage.Add(cell.R, cell.C, dmg)
	}
}
