package deploy

import (
	"math"
	"math/rand"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
)

// candidate is one legal placement a ship could take.
type candidate struct {
	Row, Col    int
	Orientation board.Orientation
	Cells       []board.Coordinates
}

func cellsFor(row, col, length int, orientation board.Orientation) []board.Coordinates {
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

func overlaps(cells []board.Coordinates, occupied map[board.Coordinates]bool) bool {
	for _, c := range cells {
		if occupied[c] {
			return true
		}
	}
	return false
}

// enumerateLegalPlacements lists every in-bounds, non-overlapping placement
// of a ship of the given length (spec.md §4.7 "enumerate every legal
// placement").
func enumerateLegalPlacements(n, length int, occupied map[board.Coordinates]bool) []candidate {
	var out []candidate
	for _, orientation := range []board.Orientation{board.Horizontal, board.Vertical} {
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				cells := cellsFor(row, col, length, orientation)
				inBounds := true
				for _, c := range cells {
					if c.R < 0 || c.R >= n || c.C < 0 || c.C >= n {
						inBounds = false
						break
					}
				}
				if !inBounds || overlaps(cells, occupied) {
					continue
				}
				out = append(out, candidate{Row: row, Col: col, Orientation: orientation, Cells: cells})
			}
		}
	}
	return out
}

func euclideanDistance(a, b board.Coordinates) float64 {
	dr := float64(a.R - b.R)
	dc := float64(a.C - b.C)
	return math.Sqrt(dr*dr + dc*dc)
}

// minDistanceToOccupied is a candidate's closest Euclidean distance to any
// already-placed ship's cells (spec.md §4.7 uses Euclidean distance "in
// the source").
func minDistanceToOccupied(cells []board.Coordinates, occupiedCells []board.Coordinates) float64 {
	min := math.Inf(1)
	for _, cell := range cells {
		for _, other := range occupiedCells {
			if d := euclideanDistance(cell, other); d < min {
				min = d
			}
		}
	}
	return min
}

// spacingThresholds steps the ideal spacing down from 5.0 to a floor of
// 1.5 in 0.5 decrements (spec.md §4.7).
func spacingThresholds() []float64 {
	var thresholds []float64
	for t := 5.0; t >= 1.5-1e-9; t -= 0.5 {
		thresholds = append(thresholds, t)
	}
	return thresholds
}

const topKFallback = 5

// rankedCandidate pairs a candidate with its minimum spacing distance to
// already-placed ships.
type rankedCandidate struct {
	candidate
	dist float64
}

// choosePlacement picks one candidate for a non-first ship: the
// Euclidean-distance spacing search with threshold stepping, falling back
// to the top-5 distance-maximizing candidates (spec.md §4.7).
func choosePlacement(rng *rand.Rand, candidates []candidate, occupiedCells []board.Coordinates) candidate {
	ranked := make([]rankedCandidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = rankedCandidate{candidate: c, dist: minDistanceToOccupied(c.Cells, occupiedCells)}
	}

	for _, threshold := range spacingThresholds() {
		var survivors []rankedCandidate
		for _, s := range ranked {
			if s.dist >= threshold {
				survivors = append(survivors, s)
			}
		}
		if len(survivors) > 0 {
			return survivors[rng.Intn(len(survivors))].candidate
		}
	}

	sortByDistDesc(ranked)
	top := ranked
	if len(top) > topKFallback {
		top = top[:topKFallback]
	}
	return top[rng.Intn(len(top))].candidate
}

func sortByDistDesc(ranked []rankedCandidate) {
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].dist > ranked[j-1].dist; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
}
