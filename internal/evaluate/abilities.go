package evaluate

import (
	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// Abilities is the pre-evaluation snapshot of what an attacker's surviving
// fleet can currently do (spec.md §4.4 "Abilities snapshot").
type Abilities struct {
	CanUseAir   bool
	CanUseSonar bool
	APDamage    int
}

func ComputeAbilities(attackerRoster *board.Roster, registry *weapon.Registry) Abilities {
	return Abilities{
		CanUseAir:   registry.Get(weapon.HE).IsAvailable(attackerRoster),
		CanUseSonar: registry.Get(weapon.Sonar).IsAvailable(attackerRoster),
		APDamage:    registry.Get(weapon.AP).Damage(attackerRoster),
	}
}
