package match

import (
	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/evaluate"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// Resolve applies action on behalf of side against the opponent's board,
// committing the damage-dealt grid and the acting side's fog-of-war view,
// and returns the ordered event stream (spec.md §6 "resolve(match, side,
// action) → []Event").
func (m *Match) Resolve(side Side, action evaluate.Action) ([]weapon.Event, error) {
	if m.Winner != NoWinner {
		return nil, ErrMatchAlreadyFinished()
	}

	opponent := side.Other()
	w := m.Registry.Get(action.Weapon)
	ctx := &weapon.Context{
		AttackerRoster: m.rosters[side],
		DefenderBoard:  m.boards[opponent],
		DefenderRoster: m.rosters[opponent],
		IsPlayer:       side == SideA,
		AttackerView:   m.views[side],
	}

	if !w.IsValidTarget(ctx, action.R, action.C) {
		return nil, ErrInvalidTarget(side, action.R, action.C)
	}

	events, _ := w.Resolve(ctx, action.R, action.C)
	m.applyEvents(side, events)
	evaluate.CommitDamage(m.damage[side], action, m.rosters[side], m.Registry)
	m.accumulateStats(side, action, events)

	if m.rosters[opponent].AllSunk() {
		if side == SideA {
			m.Winner = WinnerA
		} else {
			m.Winner = WinnerB
		}
	}

	return events, nil
}

// applyEvents is the only place a side's view grid is mutated: resolvers
// report state transitions as events but never touch the grid directly
// (spec.md §9 "Mutable context vs pure events").
func (m *Match) applyEvents(side Side, events []weapon.Event) {
	view := m.views[side]
	opponentRoster := m.rosters[side.Other()]

	for _, e := range events {
		switch ev := e.(type) {
		case weapon.CellUpdate:
			view[ev.R][ev.C] = ev.State
		case weapon.ShipUpdate:
			if !ev.Sunk {
				continue
			}
			ship, err := opponentRoster.Find(ev.ShipID)
			if err != nil {
				continue
			}
			for _, cell := range ship.Cells() {
				view[cell.R][cell.C] = board.SunkState
			}
		}
	}
}

// accumulateStats tallies turns, hits, and cumulative damage. A
// ShipUpdate with SegmentIndex >= 0 corresponds one-to-one with a
// resolveHit call that actually reduced a segment's health by the
// weapon's per-cell damage; the terminal SegmentIndex:-1 sunk event
// carries no additional damage.
func (m *Match) accumulateStats(side Side, action evaluate.Action, events []weapon.Event) {
	stats := &m.SideStats[side]
	stats.Turns++
	dmg := m.Registry.Get(action.Weapon).Damage(m.rosters[side])

	for _, e := range events {
		switch ev := e.(type) {
		case weapon.CellUpdate:
			if ev.State == board.Hit || ev.State == board.Destroyed {
				stats.Hits++
			}
		case weapon.ShipUpdate:
			if ev.SegmentIndex >= 0 {
				stats.TotalDamage += dmg
			}
		}
	}
}
