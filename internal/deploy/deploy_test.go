package deploy

import (
	"math/rand"
	"testing"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
)

func TestDeployPlacesEveryShipWithoutOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	roster := board.NewRoster()
	b := board.NewBoard(board.Size)

	if err := Deploy(rng, roster, b); err != nil {
		t.Fatalf("Deploy failed: %v", err)
	}

	seen := make(map[board.Coordinates]int)
	for _, ship := range roster.Ships {
		if !ship.Placed {
			t.Fatalf("ship %s was never placed", ship.Code)
		}
		for _, cell := range ship.Cells() {
			if !b.InBounds(cell.R, cell.C) {
				t.Fatalf("ship %s placed out of bounds at %+v", ship.Code, cell)
			}
			seen[cell]++
			if seen[cell] > 1 {
				t.Fatalf("cell %+v occupied by more than one ship", cell)
			}
		}
	}
}

func TestDeployIsReproducibleForAFixedSeed(t *testing.T) {
	run := func(seed int64) []board.Coordinates {
		rng := rand.New(rand.NewSource(seed))
		roster := board.NewRoster()
		b := board.NewBoard(board.Size)
		if err := Deploy(rng, roster, b); err != nil {
			t.Fatalf("Deploy failed: %v", err)
		}
		var cells []board.Coordinates
		for _, ship := range roster.Ships {
			cells = append(cells, ship.Cells()...)
		}
		return cells
	}

	a := run(99)
	b := run(99)
	if len(a) != len(b) {
		t.Fatalf("expected identical cell counts, got %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same-seed deployments diverged at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDeployFailsOnAnOvercrowdedBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	roster := board.NewRoster()
	b := board.NewBoard(1)

	if err := Deploy(rng, roster, b); err == nil {
		t.Fatal("expected Deploy to fail when the fixed roster cannot fit on a 1x1 board")
	}
}
