package evaluate

import (
	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// Enumerate walks the view grid and lists every candidate action
// (spec.md §4.4 "Enumeration of candidate actions"). A cell in MISS or
// SUNK is skipped entirely. A cell in DESTROYED yields only an HE
// candidate (when available), because HE's value there is purely its
// diagonal neighbors. Every other cell yields an AP candidate
// unconditionally, an HE candidate when available, and a SONAR candidate
// when available and the cell is UNKNOWN or SUSPECT.
func Enumerate(view board.ViewGrid, n int, abilities Abilities) []Action {
	var actions []Action
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch view[r][c] {
			case board.Miss, board.SunkState:
				continue

			case board.Destroyed:
				if abilities.CanUseAir {
					actions = append(actions, Action{Weapon: weapon.HE, R: r, C: c})
				}

			default: // UNKNOWN, HIT, SUSPECT
				actions = append(actions, Action{Weapon: weapon.AP, R: r, C: c})
				if abilities.CanUseAir {
					actions = append(actions, Action{Weapon: weapon.HE, R: r, C: c})
				}
				if abilities.CanUseSonar && (view[r][c] == board.Unknown || view[r][c] == board.Suspect) {
					actions = append(actions, Action{Weapon: weapon.Sonar, R: r, C: c})
				}
			}
		}
	}
	return actions
}
