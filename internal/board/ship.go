package board

// ShipCode identifies a ship type in the fixed five-ship roster.
type ShipCode string

const (
	CV ShipCode = "CV" // Carrier
	BB ShipCode = "BB" // Battleship
	CL ShipCode = "CL" // Light cruiser
	SS ShipCode = "SS" // Submarine
	DD ShipCode = "DD" // Destroyer
)

// RosterSpec is the fixed per-side roster: five ships with stable length
// and per-segment max HP. Order matches spec.md's roster table; deployment
// shuffles this order before placement (internal/deploy).
var RosterSpec = []struct {
	Code   ShipCode
	Length int
	MaxHP  int
}{
	{CV, 4, 2},
	{BB, 4, 3},
	{CL, 3, 1},
	{SS, 1, 2},
	{DD, 2, 1},
}

// Orientation of a ship's placement on the grid.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Ship is a single placed (or not-yet-placed) ship and its damage state.
type Ship struct {
	ID          int
	Code        ShipCode
	Length      int
	MaxHP       int
	Segments    []int // current HP per segment, index 0 at (Row,Col)
	Row, Col    int
	Orientation Orientation
	Placed      bool
	Sunk        bool
}

// NewShip builds an unplaced ship with full-health segments.
func NewShip(id int, code ShipCode, length, maxHP int) *Ship {
	segments := make([]int, length)
	for i := range segments {
		segments[i] = maxHP
	}
	return &Ship{
		ID:       id,
		Code:     code,
		Length:   length,
		MaxHP:    maxHP,
		Segments: segments,
	}
}

// Cells returns the board coordinates this ship occupies, in segment order.
// The ship must be placed.
func (s *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, s.Length)
	for i := 0; i < s.Length; i++ {
		if s.Orientation == Horizontal {
			cells[i] = Coordinates{R: s.Row, C: s.Col + i}
		} else {
			cells[i] = Coordinates{R: s.Row + i, C: s.Col}
		}
	}
	return cells
}

// IsSunk reports whether every segment's health has dropped to zero or
// below. The caller is responsible for latching Sunk the first time this
// turns true (see weapon.resolveHit) — this method itself is a pure check.
func (s *Ship) IsSunk() bool {
	for _, hp := range s.Segments {
		if hp > 0 {
			return false
		}
	}
	return true
}

// TotalHP sums the current (possibly negative-clamped-to-reported) segment
// healths, floored at zero per segment, used by risk accounting.
func (s *Ship) TotalHP() int {
	total := 0
	for _, hp := range s.Segments {
		if hp > 0 {
			total += hp
		}
	}
	return total
}

// Roster is a side's five ships, keyed by ID 0..4 in RosterSpec order.
// Deployment shuffles only the order in which ships are placed; it does
// not change any ship's ID or Code.
type Roster struct {
	Ships []*Ship
}

// NewRoster builds five unplaced ships from RosterSpec, IDs 0..4 in order.
func NewRoster() *Roster {
	ships := make([]*Ship, len(RosterSpec))
	for i, spec := range RosterSpec {
		ships[i] = NewShip(i, spec.Code, spec.Length, spec.MaxHP)
	}
	return &Roster{Ships: ships}
}

func (r *Roster) Find(shipID int) (*Ship, error) {
	for _, s := range r.Ships {
		if s.ID == shipID {
			return s, nil
		}
	}
	return nil, ErrShipNotFound(shipID)
}

// AliveShips returns every ship not yet sunk.
func (r *Roster) AliveShips() []*Ship {
	alive := make([]*Ship, 0, len(r.Ships))
	for _, s := range r.Ships {
		if !s.Sunk {
			alive = append(alive, s)
		}
	}
	return alive
}

// HasAlive reports whether a ship of the given code is alive.
func (r *Roster) HasAlive(code ShipCode) bool {
	for _, s := range r.Ships {
		if s.Code == code && !s.Sunk {
			return true
		}
	}
	return false
}

// AllSunk reports whether every ship on this side has been destroyed —
// the headless simulator's win condition.
func (r *Roster) AllSunk() bool {
	for _, s := range r.Ships {
		if !s.Sunk {
			return false
		}
	}
	return true
}

// MaxAliveMaxHP returns the largest per-segment max HP among still-alive
// ships, used by the evaluator's effective-damage estimate (spec.md §4.4).
func (r *Roster) MaxAliveMaxHP() int {
	max := 0
	for _, s := range r.Ships {
		if !s.Sunk && s.MaxHP > max {
			max = s.MaxHP
		}
	}
	return max
}
