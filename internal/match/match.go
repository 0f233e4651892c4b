package match

import (
	"github.com/google/uuid"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/decide"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// Side identifies one of the two participants in a match.
type Side int

const (
	SideA Side = iota
	SideB
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Winner is the terminal state of a finished match.
type Winner int

const (
	NoWinner Winner = iota
	WinnerA
	WinnerB
	Draw
)

// Stats accumulates one side's per-match counters (spec.md §4.6
// "Statistics").
type Stats struct {
	Turns       int
	Hits        int
	TotalDamage int
}

// Match is a full two-sided engagement: both boards, rosters, fog-of-war
// views, and damage-dealt grids, exclusively owned by whoever holds the
// *Match (spec.md §5 "Shared-resource policy"). It carries no RNG of its
// own — every stochastic call takes the caller's *rand.Rand explicitly.
type Match struct {
	ID  string
	N   int
	TurnCap int

	Registry *weapon.Registry

	boards  [2]*board.Board
	rosters [2]*board.Roster
	views   [2]board.ViewGrid // views[s] = s's view of the opponent's board
	damage  [2]board.DamageGrid

	Difficulty [2]decide.Difficulty

	Turn         int
	CurrentMover Side
	Winner       Winner
	SideStats    [2]Stats
}

// DefaultTurnCap bounds divergent matches (spec.md §4.6 "Turn order").
const DefaultTurnCap = 200

// NewMatch allocates a fresh two-sided match with empty boards and
// default rosters (spec.md §6 "initMatch").
func NewMatch(n int, registry *weapon.Registry, first Side) *Match {
	m := &Match{
		ID:           uuid.NewString()[:8],
		N:            n,
		TurnCap:      DefaultTurnCap,
		Registry:     registry,
		CurrentMover: first,
	}
	for _, s := range []Side{SideA, SideB} {
		m.boards[s] = board.NewBoard(n)
		m.rosters[s] = board.NewRoster()
		m.views[s] = board.NewViewGrid(n)
		m.damage[s] = board.NewDamageGrid(n)
	}
	return m
}

func (m *Match) Board(side Side) *board.Board    { return m.boards[side] }
func (m *Match) Roster(side Side) *board.Roster  { return m.rosters[side] }
func (m *Match) View(side Side) board.ViewGrid   { return m.views[side] }
func (m *Match) Damage(side Side) board.DamageGrid { return m.damage[side] }

// SetDifficulty configures the decision parameters a side's AI decider
// uses for the remainder of the match.
func (m *Match) SetDifficulty(side Side, d decide.Difficulty) {
	m.Difficulty[side] = d
}
