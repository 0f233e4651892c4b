package liveserver

import (
	"encoding/json"
	"testing"

	"github.com/MaoJiayang/battleship-remaster/internal/match"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

func TestMessageRoundTripsThroughJSON(t *testing.T) {
	msg := NewMessage[RespInitMatch](CodeInitMatch)
	msg.AddPayload(RespInitMatch{N: 10})

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Message[RespInitMatch]
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Code != CodeInitMatch || decoded.Payload.N != 10 {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestWeaponFromStringRejectsUnknownWeapons(t *testing.T) {
	if _, err := weaponFromString("NUKE"); err == nil {
		t.Fatal("expected an error for an unrecognized weapon code")
	}
	if k, err := weaponFromString("HE"); err != nil || k != weapon.HE {
		t.Fatalf("expected HE, got %v err=%v", k, err)
	}
}

func TestWinnerToStringCoversEveryWinnerValue(t *testing.T) {
	cases := map[match.Winner]string{
		match.NoWinner: "",
		match.WinnerA:  "A",
		match.WinnerB:  "B",
		match.Draw:     "draw",
	}
	for winner, want := range cases {
		if got := winnerToString(winner); got != want {
			t.Fatalf("winnerToString(%v) = %q, want %q", winner, got, want)
		}
	}
}

func TestSessionManagerTerminateRemovesSession(t *testing.T) {
	sm := NewSessionManager()
	if len(sm.sessions) != 0 {
		t.Fatalf("expected a fresh manager to have no sessions")
	}

	// GenerateNewSession requires a live *websocket.Conn for a real
	// connection; the id/cleanup bookkeeping is exercised directly here.
	sm.mu.Lock()
	sm.sessions["fake-id"] = &Session{id: "fake-id"}
	sm.mu.Unlock()

	if _, ok := sm.sessions["fake-id"]; !ok {
		t.Fatal("expected session to be present after manual insert")
	}
	sm.TerminateSession("fake-id")
	if _, ok := sm.sessions["fake-id"]; ok {
		t.Fatal("expected session to be removed after TerminateSession")
	}
}
