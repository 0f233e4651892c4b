package weapon

import "github.com/MaoJiayang/battleship-remaster/internal/board"

// Event is the closed set of things a resolver can report. Resolvers never
// call back into a foreign sink; they return an owned slice of these and
// the caller decides what an observer sees (spec.md §9 "Mutable context vs
// pure events").
type Event interface {
	event()
}

// CellUpdate reports that a defender cell's fog-of-war view state changed.
type CellUpdate struct {
	R, C      int
	State     board.ViewState
	MarkClass string // optional, consumed only by presentation; may be empty
}

func (CellUpdate) event() {}

// ShipUpdate reports a single segment's health change, or a terminal sunk
// transition when Sunk is true (SegmentIndex is -1 in that case).
type ShipUpdate struct {
	ShipID       int
	SegmentIndex int
	NewHP        int
	Sunk         bool
}

func (ShipUpdate) event() {}

// LogEntry is a human-readable match-log line.
type LogEntry struct {
	Message string
	Class   string
}

func (LogEntry) event() {}

// Effect is reserved for animation cues; the core never interprets it.
type Effect struct {
	Name string
	At   board.Coordinates
}

func (Effect) event() {}

// sunkShips extracts the set of ship ids that transitioned to sunk within
// an event slice, for resolveMultiHit's aggregate return value.
func sunkShips(events []Event) []int {
	var ids []int
	for _, e := range events {
		if su, ok := e.(ShipUpdate); ok && su.Sunk {
			ids = append(ids, su.ShipID)
		}
	}
	return ids
}
