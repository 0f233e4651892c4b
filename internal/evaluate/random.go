package evaluate

import (
	"math/rand"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// maxRandomCellAttempts bounds the rejection loop that looks for a
// not-yet-resolved cell before falling back to a full scan.
const maxRandomCellAttempts = 64

// RandomAction implements the difficulty knob's randomness branch (spec.md
// §4.5/§6 "Randomness"): a uniformly random legal cell, weighted toward AP
// but occasionally HE or SONAR when the attacker's fleet allows it.
func RandomAction(rng *rand.Rand, view board.ViewGrid, n int, abilities Abilities) Action {
	r, c := randomOpenCell(rng, view, n)

	switch {
	case abilities.CanUseAir && rng.Float64() < 0.1:
		return Action{Weapon: weapon.HE, R: r, C: c}
	case abilities.CanUseSonar && rng.Float64() < 0.1:
		return Action{Weapon: weapon.Sonar, R: r, C: c}
	default:
		return Action{Weapon: weapon.AP, R: r, C: c}
	}
}

func randomOpenCell(rng *rand.Rand, view board.ViewGrid, n int) (int, int) {
	isOpen := func(s board.ViewState) bool {
		return s != board.Miss && s != board.Destroyed && s != board.SunkState
	}

	for attempt := 0; attempt < maxRandomCellAttempts; attempt++ {
		r, c := rng.Intn(n), rng.Intn(n)
		if isOpen(view[r][c]) {
			return r, c
		}
	}

	var open []board.Coordinates
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if isOpen(view[r][c]) {
				open = append(open, board.Coordinates{R: r, C: c})
			}
		}
	}
	if len(open) == 0 {
		return rng.Intn(n), rng.Intn(n)
	}
	chosen := open[rng.Intn(len(open))]
	return chosen.R, chosen.C
}
