package match

import (
	"math/rand"
	"testing"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/decide"
	"github.com/MaoJiayang/battleship-remaster/internal/evaluate"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

func TestRunHeadlessTerminatesWithAWinnerOrDraw(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	registry := weapon.NewRegistry()

	m, err := RunHeadless(rng, 10, registry, decide.Normal, decide.Normal, SideA)
	if err != nil {
		t.Fatalf("RunHeadless failed: %v", err)
	}

	if m.Winner == NoWinner {
		t.Fatal("expected the match to reach a terminal state")
	}
	if m.Winner != Draw {
		loser := SideA
		if m.Winner == WinnerA {
			loser = SideB
		}
		if !m.Roster(loser).AllSunk() {
			t.Fatalf("winner %v declared but loser's roster is not fully sunk", m.Winner)
		}
	}
	if m.Turn > m.TurnCap {
		t.Fatalf("match ran past its turn cap: %d > %d", m.Turn, m.TurnCap)
	}
}

func TestResolveRejectsAnInvalidTarget(t *testing.T) {
	registry := weapon.NewRegistry()
	m := NewMatch(10, registry, SideA)
	rng := rand.New(rand.NewSource(1))
	if _, err := m.Deploy(rng, SideB); err != nil {
		t.Fatalf("deploy failed: %v", err)
	}

	// Sonar rejects any target that is not UNKNOWN or SUSPECT; mark the
	// cell HIT first so isValidTarget turns it down.
	m.views[SideA][3][3] = board.Hit
	action := evaluate.Action{Weapon: weapon.Sonar, R: 3, C: 3}

	if _, err := m.Resolve(SideA, action); err == nil {
		t.Fatal("expected Resolve to reject an invalid sonar target")
	}
}
