package match

import (
	"math/rand"

	"github.com/MaoJiayang/battleship-remaster/internal/decide"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// RunHeadless drives a full two-sided match purely in data space: deploys
// both rosters, then alternates decide/resolve turns until one side is
// fully sunk or the turn cap is reached, at which point the match is a
// DRAW (spec.md §4.6 "Match loop (headless)").
func RunHeadless(rng *rand.Rand, n int, registry *weapon.Registry, diffA, diffB decide.Difficulty, first Side) (*Match, error) {
	m := NewMatch(n, registry, first)
	m.SetDifficulty(SideA, diffA)
	m.SetDifficulty(SideB, diffB)

	if _, err := m.Deploy(rng, SideA); err != nil {
		return nil, err
	}
	if _, err := m.Deploy(rng, SideB); err != nil {
		return nil, err
	}

	mover := first
	turn := 0
	for ; turn < m.TurnCap; turn++ {
		m.Turn = turn
		action := m.Decide(rng, mover)
		if _, err := m.Resolve(mover, action); err != nil {
			return nil, err
		}
		if m.Winner != NoWinner {
			return m, nil
		}
		mover = mover.Other()
	}

	m.Turn = turn
	m.Winner = Draw
	return m, nil
}
