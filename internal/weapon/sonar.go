package weapon

import "github.com/MaoJiayang/battleship-remaster/internal/board"

// sonarWeapon is the non-lethal sensor: requires a surviving ship from its
// configured sensor set (default {DD} per spec.md's adopted open-question
// resolution — the sensor set is kept configurable rather than hardcoded
// so a difficulty variant could add SS without touching resolution logic).
type sonarWeapon struct {
	sensors map[board.ShipCode]bool
}

func NewSonarWeapon(sensorCodes ...board.ShipCode) sonarWeapon {
	sensors := make(map[board.ShipCode]bool, len(sensorCodes))
	for _, code := range sensorCodes {
		sensors[code] = true
	}
	return sonarWeapon{sensors: sensors}
}

func (sonarWeapon) Kind() Kind    { return Sonar }
func (sonarWeapon) Label() string { return "Sonar" }

func (s sonarWeapon) IsAvailable(attackerRoster *board.Roster) bool {
	for _, ship := range attackerRoster.Ships {
		if !ship.Sunk && s.sensors[ship.Code] {
			return true
		}
	}
	return false
}

func (sonarWeapon) Damage(attackerRoster *board.Roster) int    { return 0 }
func (sonarWeapon) MaxDamage(attackerRoster *board.Roster) int { return 0 }

func (sonarWeapon) Coverage(n, r, c int) []board.Coordinates {
	cells := make([]board.Coordinates, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			rr, cc := r+dr, c+dc
			if rr >= 0 && rr < n && cc >= 0 && cc < n {
				cells = append(cells, board.Coordinates{R: rr, C: cc})
			}
		}
	}
	return cells
}

func (sonarWeapon) IsValidTarget(ctx *Context, r, c int) bool {
	if !ctx.DefenderBoard.InBounds(r, c) {
		return false
	}
	view := ctx.AttackerView[r][c]
	return view == board.Unknown || view == board.Suspect
}

// Resolve implements spec.md §4.1.3's non-lethal scan semantics: count
// alive, unstruck ship segments among the 3x3's still-unknown cells; a
// zero count clears the whole square to MISS, a positive count reveals the
// center (possibly sinking nothing, since dmg=0) and marks still-unknown
// neighbors SUSPECT.
func (s sonarWeapon) Resolve(ctx *Context, r, c int) ([]Event, []int) {
	n := ctx.DefenderBoard.N
	area := s.Coverage(n, r, c)

	signal := 0
	for _, cell := range area {
		view := ctx.AttackerView[cell.R][cell.C]
		if view != board.Unknown && view != board.Suspect {
			continue
		}
		trueCell := ctx.DefenderBoard.At(cell.R, cell.C)
		if trueCell.Hit || trueCell.ShipID == board.EmptyShipID {
			continue
		}
		ship, err := ctx.DefenderRoster.Find(trueCell.ShipID)
		if err != nil {
			continue
		}
		if ship.Segments[trueCell.SegmentIndex] > 0 {
			signal++
		}
	}

	if signal == 0 {
		var events []Event
		for _, cell := range area {
			view := ctx.AttackerView[cell.R][cell.C]
			if view != board.Unknown && view != board.Suspect {
				continue
			}
			events = append(events, resolveHit(ctx, cell.R, cell.C, 0)...)
		}
		events = append(events, LogEntry{Message: "sonar ping: no contact", Class: logClass(ctx.IsPlayer)})
		return events, nil
	}

	events := resolveHit(ctx, r, c, 0)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			rr, cc := r+dr, c+dc
			if rr < 0 || rr >= n || cc < 0 || cc >= n {
				continue
			}
			if ctx.AttackerView[rr][cc] == board.Unknown {
				events = append(events, CellUpdate{R: rr, C: cc, State: board.Suspect})
			}
		}
	}
	events = append(events, LogEntry{Message: "sonar ping: contact", Class: logClass(ctx.IsPlayer)})
	return events, sunkShips(events)
}
