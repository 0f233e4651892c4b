package evaluate

import "github.com/MaoJiayang/battleship-remaster/internal/weapon"

// Action is a candidate (or chosen) move: a weapon and a target cell.
type Action struct {
	Weapon weapon.Kind
	R, C   int
}

// Scored pairs an action with its evaluated utility and the raw terms that
// produced it, kept around for risk look-ahead and for tests/telemetry.
type Scored struct {
	Action         Action
	Utility        float64
	ExpectedDamage float64
	InfoGain       float64
}
