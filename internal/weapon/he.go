package weapon

import "github.com/MaoJiayang/battleship-remaster/internal/board"

// heMaxDamage is the normalization ceiling the evaluator uses for HE's
// expected-damage term (spec.md §4.4: "weaponMaxDamage = ... or 5 for HE").
const heMaxDamage = 5

// heWeapon is the air strike: requires a surviving carrier, hits an X
// pattern (center + four diagonal neighbors) for 1 damage per cell.
type heWeapon struct{}

func (heWeapon) Kind() Kind    { return HE }
func (heWeapon) Label() string { return "Air Strike" }

func (heWeapon) IsAvailable(attackerRoster *board.Roster) bool {
	return attackerRoster.HasAlive(board.CV)
}

func (heWeapon) Damage(attackerRoster *board.Roster) int { return 1 }

func (heWeapon) MaxDamage(attackerRoster *board.Roster) int { return heMaxDamage }

func (heWeapon) Coverage(n, r, c int) []board.Coordinates {
	candidates := []board.Coordinates{
		{R: r, C: c},
		{R: r - 1, C: c - 1},
		{R: r - 1, C: c + 1},
		{R: r + 1, C: c - 1},
		{R: r + 1, C: c + 1},
	}
	cells := make([]board.Coordinates, 0, len(candidates))
	for _, cell := range candidates {
		if cell.R >= 0 && cell.R < n && cell.C >= 0 && cell.C < n {
			cells = append(cells, cell)
		}
	}
	return cells
}

func (heWeapon) IsValidTarget(ctx *Context, r, c int) bool {
	return ctx.DefenderBoard.InBounds(r, c)
}

func (w heWeapon) Resolve(ctx *Context, r, c int) ([]Event, []int) {
	n := ctx.DefenderBoard.N
	cells := w.Coverage(n, r, c)
	return resolveMultiHit(ctx, cells, w.Damage(ctx.AttackerRoster))
}
