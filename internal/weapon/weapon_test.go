package weapon

import (
	"testing"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
)

func newTestContext(n int) (*board.Board, *board.Roster, *board.Roster, board.ViewGrid) {
	defBoard := board.NewBoard(n)
	defRoster := board.NewRoster()
	attRoster := board.NewRoster()
	view := board.NewViewGrid(n)
	return defBoard, defRoster, attRoster, view
}

func findShip(r *board.Roster, code board.ShipCode) *board.Ship {
	for _, s := range r.Ships {
		if s.Code == code {
			return s
		}
	}
	return nil
}

// Example 1: AP on empty cell.
func TestAPOnEmptyCell(t *testing.T) {
	defBoard, defRoster, attRoster, view := newTestContext(board.Size)
	ctx := &Context{AttackerRoster: attRoster, DefenderBoard: defBoard, DefenderRoster: defRoster, AttackerView: view}

	events, sunk := apWeapon{}.Resolve(ctx, 3, 3)
	if len(sunk) != 0 {
		t.Fatalf("expected no sunk ships, got %v", sunk)
	}
	if len(events) != 1 {
		t.Fatalf("expected exactly one event, got %d: %+v", len(events), events)
	}
	cu, ok := events[0].(CellUpdate)
	if !ok || cu.R != 3 || cu.C != 3 || cu.State != board.Miss {
		t.Fatalf("expected MISS cell update at (3,3), got %+v", events[0])
	}
}

// Example 2: AP that sinks a DD.
func TestAPSinksDD(t *testing.T) {
	defBoard, defRoster, attRoster, view := newTestContext(board.Size)
	dd := findShip(defRoster, board.DD)
	dd.Row, dd.Col, dd.Orientation = 5, 2, board.Horizontal
	if err := defBoard.PlaceShip(dd); err != nil {
		t.Fatalf("unexpected placement error: %v", err)
	}

	ctx := &Context{AttackerRoster: attRoster, DefenderBoard: defBoard, DefenderRoster: defRoster, AttackerView: view}

	events, sunk := apWeapon{}.Resolve(ctx, 5, 2)
	if len(sunk) != 0 {
		t.Fatalf("first hit must not sink the ship yet, got %v", sunk)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(events), events)
	}
	if cu := events[0].(CellUpdate); cu.R != 5 || cu.C != 2 || cu.State != board.Destroyed {
		t.Fatalf("expected DESTROYED cell update, got %+v", cu)
	}
	if su := events[1].(ShipUpdate); su.ShipID != dd.ID || su.NewHP != -2 || su.Sunk {
		t.Fatalf("unexpected ship update: %+v", su)
	}

	events2, sunk2 := apWeapon{}.Resolve(ctx, 5, 3)
	if len(sunk2) != 1 || sunk2[0] != dd.ID {
		t.Fatalf("expected DD to sink, got %v", sunk2)
	}
	if len(events2) != 4 {
		t.Fatalf("expected 4 events, got %d: %+v", len(events2), events2)
	}
	if cu := events2[0].(CellUpdate); cu.State != board.Destroyed {
		t.Fatalf("expected DESTROYED cell update, got %+v", cu)
	}
	if su := events2[1].(ShipUpdate); su.NewHP != -2 || su.Sunk {
		t.Fatalf("unexpected intermediate ship update: %+v", su)
	}
	if su := events2[2].(ShipUpdate); !su.Sunk {
		t.Fatalf("expected terminal sunk ship update, got %+v", su)
	}
	if _, ok := events2[3].(LogEntry); !ok {
		t.Fatalf("expected a LogEntry for the sink, got %+v", events2[3])
	}
	if !dd.Sunk {
		t.Fatal("ship's Sunk flag must be latched true")
	}
}

// Example 3: HE on an X pattern.
func TestHEOnXPattern(t *testing.T) {
	defBoard, defRoster, attRoster, view := newTestContext(board.Size)
	cl := findShip(defRoster, board.CL)
	cl.Row, cl.Col, cl.Orientation = 4, 4, board.Horizontal
	if err := defBoard.PlaceShip(cl); err != nil {
		t.Fatalf("unexpected placement error: %v", err)
	}

	ctx := &Context{AttackerRoster: attRoster, DefenderBoard: defBoard, DefenderRoster: defRoster, AttackerView: view}

	events, sunk := heWeapon{}.Resolve(ctx, 5, 5)
	if len(sunk) != 0 {
		t.Fatalf("expected no sunk ships (middle segment survives), got %v", sunk)
	}

	var destroyedCount, missCount int
	for _, e := range events {
		cu, ok := e.(CellUpdate)
		if !ok {
			continue
		}
		switch cu.State {
		case board.Destroyed:
			destroyedCount++
		case board.Miss:
			missCount++
		}
	}
	if destroyedCount != 2 {
		t.Fatalf("expected 2 DESTROYED cell updates, got %d", destroyedCount)
	}
	if missCount != 3 {
		t.Fatalf("expected 3 MISS cell updates, got %d", missCount)
	}
	if cl.Segments[1] != cl.MaxHP {
		t.Fatalf("middle segment must be untouched, got hp=%d", cl.Segments[1])
	}
	if cl.Sunk {
		t.Fatal("CL must not be sunk: one segment survives")
	}
}

// Example 4: sonar, no contact.
func TestSonarNoContact(t *testing.T) {
	defBoard, defRoster, attRoster, view := newTestContext(board.Size)
	ctx := &Context{AttackerRoster: attRoster, DefenderBoard: defBoard, DefenderRoster: defRoster, AttackerView: view}

	events, _ := NewSonarWeapon(board.DD).Resolve(ctx, 0, 0)

	var missCount, logCount int
	for _, e := range events {
		switch ev := e.(type) {
		case CellUpdate:
			if ev.State != board.Miss {
				t.Fatalf("expected only MISS cell updates, got %+v", ev)
			}
			missCount++
		case LogEntry:
			logCount++
		}
	}
	if missCount != 4 {
		t.Fatalf("expected 4 MISS updates (clipped 2x2 corner), got %d", missCount)
	}
	if logCount != 1 {
		t.Fatalf("expected exactly one log entry, got %d", logCount)
	}
}

// Example 5: sonar contact with center on a ship.
func TestSonarContact(t *testing.T) {
	defBoard, defRoster, attRoster, view := newTestContext(board.Size)
	ss := findShip(defRoster, board.SS)
	ss.Row, ss.Col = 4, 4
	if err := defBoard.PlaceShip(ss); err != nil {
		t.Fatalf("unexpected placement error: %v", err)
	}

	ctx := &Context{AttackerRoster: attRoster, DefenderBoard: defBoard, DefenderRoster: defRoster, AttackerView: view}

	events, sunk := NewSonarWeapon(board.DD).Resolve(ctx, 4, 4)
	if len(sunk) != 0 {
		t.Fatalf("sonar must never sink a ship, got %v", sunk)
	}

	var centerHit bool
	var suspectCount, logCount int
	for _, e := range events {
		switch ev := e.(type) {
		case CellUpdate:
			if ev.R == 4 && ev.C == 4 {
				if ev.State != board.Hit {
					t.Fatalf("expected center to reveal HIT, got %v", ev.State)
				}
				centerHit = true
			} else if ev.State == board.Suspect {
				suspectCount++
			}
		case LogEntry:
			logCount++
		}
	}
	if !centerHit {
		t.Fatal("expected a center cell update")
	}
	if suspectCount != 8 {
		t.Fatalf("expected 8 SUSPECT cell updates, got %d", suspectCount)
	}
	if logCount != 1 {
		t.Fatalf("expected exactly one log entry, got %d", logCount)
	}
	if ss.Sunk || ss.Segments[0] != ss.MaxHP {
		t.Fatal("SS must be untouched in health, only revealed")
	}
}

func TestResolveHitIdempotentOnMiss(t *testing.T) {
	defBoard, defRoster, attRoster, view := newTestContext(board.Size)
	ctx := &Context{AttackerRoster: attRoster, DefenderBoard: defBoard, DefenderRoster: defRoster, AttackerView: view}

	resolveHit(ctx, 1, 1, 3)
	events := resolveHit(ctx, 1, 1, 3)
	if len(events) != 0 {
		t.Fatalf("re-firing on a confirmed miss must be a no-op, got %+v", events)
	}
}

func TestResolveHitIdempotentOnDestroyedSegment(t *testing.T) {
	defBoard, defRoster, attRoster, view := newTestContext(board.Size)
	dd := findShip(defRoster, board.DD)
	dd.Row, dd.Col, dd.Orientation = 0, 0, board.Horizontal
	if err := defBoard.PlaceShip(dd); err != nil {
		t.Fatal(err)
	}
	ctx := &Context{AttackerRoster: attRoster, DefenderBoard: defBoard, DefenderRoster: defRoster, AttackerView: view}

	resolveHit(ctx, 0, 0, 5)
	events := resolveHit(ctx, 0, 0, 5)
	if len(events) != 0 {
		t.Fatalf("re-firing on an already-destroyed segment must be a no-op, got %+v", events)
	}
}

func TestAPDamageTable(t *testing.T) {
	_, _, attRoster, _ := newTestContext(board.Size)
	w := apWeapon{}

	if got := w.Damage(attRoster); got != 3 {
		t.Fatalf("BB alive: expected damage 3, got %d", got)
	}

	findShip(attRoster, board.BB).Sunk = true
	if got := w.Damage(attRoster); got != 2 {
		t.Fatalf("SS/CL alive, BB dead: expected damage 2, got %d", got)
	}

	findShip(attRoster, board.SS).Sunk = true
	findShip(attRoster, board.CL).Sunk = true
	if got := w.Damage(attRoster); got != 1 {
		t.Fatalf("only CV/DD alive: expected damage 1, got %d", got)
	}
}
