package belief

import (
	"math/rand"
	"sort"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
)

// ShipSpec is the minimal shape the sampler needs for a still-alive target
// ship: an id to key placements by, and the length to place.
type ShipSpec struct {
	ID     int
	Length int
}

// Placement is one ship's hypothesized position within a sampled
// configuration.
type Placement struct {
	ShipID      int
	Row, Col    int
	Orientation board.Orientation
	Length      int
}

func (p Placement) Cells() []board.Coordinates {
	return placementCells(p.Row, p.Col, p.Length, p.Orientation)
}

func placementCells(row, col, length int, orientation board.Orientation) []board.Coordinates {
	cells := make([]board.Coordinates, length)
	for i := 0; i < length; i++ {
		if orientation == board.Horizontal {
			cells[i] = board.Coordinates{R: row, C: col + i}
		} else {
			cells[i] = board.Coordinates{R: row + i, C: col}
		}
	}
	return cells
}

// Configuration is one sampled, pairwise cell-disjoint assignment of every
// still-alive target ship to a placement (spec.md §3 "Belief state").
type Configuration struct {
	Placements map[int]Placement
}

func (cfg Configuration) occupies(coord board.Coordinates) bool {
	for _, p := range cfg.Placements {
		for _, cell := range p.Cells() {
			if cell == coord {
				return true
			}
		}
	}
	return false
}

// enumeratePlacements lists every axis-aligned placement of the given
// length that stays in bounds, avoids cells already claimed in this
// sample, and avoids every mustAvoid cell.
func enumeratePlacements(n, length int, occupied, mustAvoid map[board.Coordinates]bool) []Placement {
	var out []Placement
	for _, orientation := range []board.Orientation{board.Horizontal, board.Vertical} {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				cells := placementCells(r, c, length, orientation)
				ok := true
				for _, cell := range cells {
					if cell.R < 0 || cell.R >= n || cell.C < 0 || cell.C >= n {
						ok = false
						break
					}
					if occupied[cell] || mustAvoid[cell] {
						ok = false
						break
					}
				}
				if ok {
					out = append(out, Placement{Row: r, Col: c, Orientation: orientation, Length: length})
				}
			}
		}
		if length == 1 {
			break // a 1-cell ship has no horizontal/vertical distinction
		}
	}
	return out
}

func placementWeight(cells []board.Coordinates, mustHit, suspect map[board.Coordinates]bool) float64 {
	var hitCount, suspectCount int
	for _, cell := range cells {
		if mustHit[cell] {
			hitCount++
		}
		if suspect[cell] {
			suspectCount++
		}
	}
	return 1 + 10*float64(hitCount) + 2*float64(suspectCount)
}

// SampleConfiguration draws one weighted-rejection sample per spec.md
// §4.3: ships are placed longest-first, each placement chosen with
// probability proportional to how much observed evidence it covers, and
// the whole sample is rejected unless every mustHit cell ends up covered.
func SampleConfiguration(rng *rand.Rand, ships []ShipSpec, n int, c Constraints) (Configuration, bool) {
	sorted := make([]ShipSpec, len(ships))
	copy(sorted, ships)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Length > sorted[j].Length })

	occupied := make(map[board.Coordinates]bool)
	placements := make(map[int]Placement, len(sorted))

	for _, ship := range sorted {
		candidates := enumeratePlacements(n, ship.Length, occupied, c.MustAvoid)
		if len(candidates) == 0 {
			return Configuration{}, false
		}

		weights := make([]float64, len(candidates))
		total := 0.0
		for i, p := range candidates {
			w := placementWeight(p.Cells(), c.MustHit, c.Suspect)
			weights[i] = w
			total += w
		}

		target := rng.Float64() * total
		chosenIdx := len(candidates) - 1
		cumulative := 0.0
		for i, w := range weights {
			cumulative += w
			if target < cumulative {
				chosenIdx = i
				break
			}
		}

		chosen := candidates[chosenIdx]
		chosen.ShipID = ship.ID
		placements[ship.ID] = chosen
		for _, cell := range chosen.Cells() {
			occupied[cell] = true
		}
	}

	for coord := range c.MustHit {
		covered := false
		for _, p := range placements {
			for _, cell := range p.Cells() {
				if cell == coord {
					covered = true
					break
				}
			}
			if covered {
				break
			}
		}
		if !covered {
			return Configuration{}, false
		}
	}

	return Configuration{Placements: placements}, true
}
