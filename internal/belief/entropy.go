package belief

import (
	"math"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
)

// Epsilon is the tolerance below which a probability is treated as exactly
// 0 or 1 for entropy purposes (spec.md §4.3).
const Epsilon = 1e-9

// BinaryEntropy is H2(p) = -p*log2(p) - (1-p)*log2(1-p), zero within
// Epsilon of 0 or 1.
func BinaryEntropy(p float64) float64 {
	if p <= Epsilon || p >= 1-Epsilon {
		return 0
	}
	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}

// TotalEntropy sums binary entropy over every cell whose view state is
// still UNKNOWN or SUSPECT (spec.md §4.3 "Entropy").
func TotalEntropy(marginal [][]float64, view board.ViewGrid, n int) float64 {
	total := 0.0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if view[r][c] == board.Unknown || view[r][c] == board.Suspect {
				total += BinaryEntropy(marginal[r][c])
			}
		}
	}
	return total
}

// ConditionalEntropyAttack approximates the expected post-strike entropy
// for an AP/HE candidate: current entropy minus the entropy eliminated by
// revealing each covered cell, clamped at zero (spec.md §4.3).
func ConditionalEntropyAttack(currentEntropy float64, marginal [][]float64, coverage []board.Coordinates) float64 {
	reduction := 0.0
	for _, cell := range coverage {
		reduction += BinaryEntropy(marginal[cell.R][cell.C])
	}
	remaining := currentEntropy - reduction
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ConditionalEntropySonar implements spec.md §4.3's sonar-specific formula:
//
//	p*    = p(center)
//	A_sum = sum of H2(p(r,c)) over UNKNOWN/SUSPECT cells in the 3x3
//	E     = p*·(H - H2(p*)) + (1-p*)·(H - A_sum)
//	result = max(0, H - max(0, H - E))
func ConditionalEntropySonar(currentEntropy float64, marginal [][]float64, view board.ViewGrid, center board.Coordinates, area []board.Coordinates) float64 {
	pStar := marginal[center.R][center.C]

	aSum := 0.0
	for _, cell := range area {
		if view[cell.R][cell.C] == board.Unknown || view[cell.R][cell.C] == board.Suspect {
			aSum += BinaryEntropy(marginal[cell.R][cell.C])
		}
	}

	e := pStar*(currentEntropy-BinaryEntropy(pStar)) + (1-pStar)*(currentEntropy-aSum)

	inner := currentEntropy - e
	if inner < 0 {
		inner = 0
	}
	result := currentEntropy - inner
	if result < 0 {
		result = 0
	}
	return result
}
