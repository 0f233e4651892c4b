package belief

import "github.com/MaoJiayang/battleship-remaster/internal/board"

// Constraints partitions a view grid into the hard and soft signals the
// sampler must respect (spec.md §4.3 "Constraints derivation").
type Constraints struct {
	N         int
	MustHit   map[board.Coordinates]bool
	MustAvoid map[board.Coordinates]bool
	Suspect   map[board.Coordinates]bool
}

func DeriveConstraints(view board.ViewGrid, n int) Constraints {
	c := Constraints{
		N:         n,
		MustHit:   make(map[board.Coordinates]bool),
		MustAvoid: make(map[board.Coordinates]bool),
		Suspect:   make(map[board.Coordinates]bool),
	}
	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			coord := board.Coordinates{R: r, C: col}
			switch view[r][col] {
			case board.Hit, board.Destroyed:
				c.MustHit[coord] = true
			case board.Miss, board.SunkState:
				c.MustAvoid[coord] = true
			case board.Suspect:
				c.Suspect[coord] = true
			}
		}
	}
	return c
}
