package liveserver

import (
	"encoding/json"
	"fmt"

	"github.com/MaoJiayang/battleship-remaster/internal/board"
	"github.com/MaoJiayang/battleship-remaster/internal/decide"
	"github.com/MaoJiayang/battleship-remaster/internal/evaluate"
	"github.com/MaoJiayang/battleship-remaster/internal/match"
	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

// RequestProcessor owns the per-connection dispatch loop, generalizing the
// teacher's api.RequestProcessor from lobby/attack signal codes to
// initMatch/deploy/placeShip/decide/resolve/status.
type RequestProcessor struct {
	sessionManager *SessionManager
	registry       *weapon.Registry
}

func NewRequestProcessor(sessionManager *SessionManager, registry *weapon.Registry) *RequestProcessor {
	return &RequestProcessor{sessionManager: sessionManager, registry: registry}
}

// ProcessSession is the per-connection goroutine body: send a session id,
// then loop reading signals until the connection breaks.
func (rp *RequestProcessor) ProcessSession(session *Session) {
	defer func() {
		_ = session.conn.Close()
		rp.sessionManager.TerminateSession(session.id)
	}()

	idMsg := NewMessage[RespSessionID](CodeSessionID)
	idMsg.AddPayload(RespSessionID{SessionID: session.id})
	if err := session.writeWithRetry(idMsg); err != nil {
		return
	}

	for {
		payload, err := session.readFrame()
		if err != nil {
			return
		}

		var signal Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := NewMessage[NoPayload](CodeSignalAbsent)
			msg.AddError("incoming payload must contain a 'code' field", "")
			if err := session.writeWithRetry(msg); err != nil {
				return
			}
			continue
		}

		if rp.dispatch(session, signal.Code, payload) == ConnLoopBreak {
			return
		}
	}
}

func (rp *RequestProcessor) dispatch(session *Session, code uint8, payload []byte) uint8 {
	switch code {
	case CodeInitMatch:
		return rp.handleInitMatch(session, payload)
	case CodeDeploy:
		return rp.handleDeploy(session)
	case CodePlaceShip:
		return rp.handlePlaceShip(session, payload)
	case CodeResolve:
		return rp.handleResolve(session, payload)
	case CodeStatus:
		return rp.handleStatus(session)
	default:
		msg := NewMessage[NoPayload](CodeInvalidSignal)
		msg.AddError("", fmt.Sprintf("unrecognized signal code: %d", code))
		if err := session.writeWithRetry(msg); err != nil {
			return ConnLoopBreak
		}
		return ConnLoopContinue
	}
}

func (rp *RequestProcessor) handleInitMatch(session *Session, payload []byte) uint8 {
	var req ReqInitMatch
	if err := json.Unmarshal(payload, &struct {
		Payload *ReqInitMatch `json:"payload"`
	}{&req}); err != nil {
		return rp.reject(session, "malformed initMatch payload")
	}
	if req.N <= 0 {
		req.N = board.Size
	}

	m := match.NewMatch(req.N, rp.registry, match.SideA)
	m.SetDifficulty(match.SideB, difficultyFromString(req.AIDifficulty))
	if _, err := m.Deploy(session.rng, match.SideB); err != nil {
		return rp.reject(session, "failed to deploy the opposing fleet: "+err.Error())
	}
	session.m = m

	resp := NewMessage[RespInitMatch](CodeInitMatch)
	resp.AddPayload(RespInitMatch{N: req.N})
	if err := session.writeWithRetry(resp); err != nil {
		return ConnLoopBreak
	}
	return ConnLoopContinue
}

func (rp *RequestProcessor) handleDeploy(session *Session) uint8 {
	if session.m == nil {
		return rp.reject(session, "no match in progress; send initMatch first")
	}

	ships, err := session.m.Deploy(session.rng, match.SideA)
	if err != nil {
		return rp.reject(session, err.Error())
	}

	resp := NewMessage[RespDeploy](CodeDeploy)
	resp.AddPayload(RespDeploy{Ships: wireShips(ships)})
	if err := session.writeWithRetry(resp); err != nil {
		return ConnLoopBreak
	}
	return ConnLoopContinue
}

func (rp *RequestProcessor) handlePlaceShip(session *Session, payload []byte) uint8 {
	if session.m == nil {
		return rp.reject(session, "no match in progress; send initMatch first")
	}

	var req ReqPlaceShip
	if err := json.Unmarshal(payload, &struct {
		Payload *ReqPlaceShip `json:"payload"`
	}{&req}); err != nil {
		return rp.reject(session, "malformed placeShip payload")
	}

	if err := session.m.PlaceShip(match.SideA, req.ShipID, req.Row, req.Col, board.Orientation(req.Orientation)); err != nil {
		return rp.reject(session, err.Error())
	}

	resp := NewMessage[RespPlaceShip](CodePlaceShip)
	resp.AddPayload(RespPlaceShip{ShipID: req.ShipID})
	if err := session.writeWithRetry(resp); err != nil {
		return ConnLoopBreak
	}
	return ConnLoopContinue
}

// handleResolve applies the human's attack, then — if the match is still
// live — runs the AI's own decide/resolve turn and reports both the AI's
// chosen action (CodeDecide) and its resolved outcome (CodeResolve),
// mirroring the one-goroutine-per-session ownership spec.md §5 requires.
func (rp *RequestProcessor) handleResolve(session *Session, payload []byte) uint8 {
	m := session.m
	if m == nil {
		return rp.reject(session, "no match in progress; send initMatch first")
	}

	var req ReqResolve
	if err := json.Unmarshal(payload, &struct {
		Payload *ReqResolve `json:"payload"`
	}{&req}); err != nil {
		return rp.reject(session, "malformed resolve payload")
	}

	kind, err := weaponFromString(req.Weapon)
	if err != nil {
		return rp.reject(session, err.Error())
	}

	events, err := m.Resolve(match.SideA, evaluate.Action{Weapon: kind, R: req.Row, C: req.Col})
	if err != nil {
		return rp.reject(session, err.Error())
	}
	if loop := rp.sendResolve(session, match.SideA, events, m.Winner); loop == ConnLoopBreak {
		return ConnLoopBreak
	}
	if m.Winner != match.NoWinner {
		return ConnLoopContinue
	}

	action := m.Decide(session.rng, match.SideB)
	decideMsg := NewMessage[RespDecide](CodeDecide)
	decideMsg.AddPayload(RespDecide{Weapon: action.Weapon.String(), Row: action.R, Col: action.C})
	if err := session.writeWithRetry(decideMsg); err != nil {
		return ConnLoopBreak
	}

	aiEvents, err := m.Resolve(match.SideB, action)
	if err != nil {
		return rp.reject(session, "AI resolve failed: "+err.Error())
	}
	return rp.sendResolve(session, match.SideB, aiEvents, m.Winner)
}

func (rp *RequestProcessor) sendResolve(session *Session, side match.Side, events []weapon.Event, winner match.Winner) uint8 {
	resp := NewMessage[RespResolve](CodeResolve)
	resp.AddPayload(RespResolve{
		Side:   side.String(),
		Events: wireEvents(events),
		Winner: winnerToString(winner),
	})
	if err := session.writeWithRetry(resp); err != nil {
		return ConnLoopBreak
	}
	return ConnLoopContinue
}

func (rp *RequestProcessor) handleStatus(session *Session) uint8 {
	if session.m == nil {
		return rp.reject(session, "no match in progress; send initMatch first")
	}
	status := session.m.Status()
	resp := NewMessage[RespStatus](CodeStatus)
	resp.AddPayload(RespStatus{
		Turn:   status.Turn,
		Winner: winnerToString(status.Winner),
		StatsA: SideStats(status.StatsA),
		StatsB: SideStats(status.StatsB),
	})
	if err := session.writeWithRetry(resp); err != nil {
		return ConnLoopBreak
	}
	return ConnLoopContinue
}

func (rp *RequestProcessor) reject(session *Session, reason string) uint8 {
	msg := NewMessage[NoPayload](CodeInvalidSignal)
	msg.AddError(reason, "")
	if err := session.writeWithRetry(msg); err != nil {
		return ConnLoopBreak
	}
	return ConnLoopContinue
}

func difficultyFromString(s string) decide.Difficulty {
	switch s {
	case "easy":
		return decide.Easy
	case "hard":
		return decide.Hard
	default:
		return decide.Normal
	}
}

func weaponFromString(s string) (weapon.Kind, error) {
	switch s {
	case "AP":
		return weapon.AP, nil
	case "HE":
		return weapon.HE, nil
	case "SONAR":
		return weapon.Sonar, nil
	default:
		return weapon.AP, fmt.Errorf("liveserver: unrecognized weapon %q", s)
	}
}

func winnerToString(w match.Winner) string {
	switch w {
	case match.WinnerA:
		return "A"
	case match.WinnerB:
		return "B"
	case match.Draw:
		return "draw"
	default:
		return ""
	}
}

func wireShips(ships []*board.Ship) []PlacedShip {
	out := make([]PlacedShip, len(ships))
	for i, s := range ships {
		out[i] = PlacedShip{ID: s.ID, Code: string(s.Code), Row: s.Row, Col: s.Col, Orientation: int(s.Orientation)}
	}
	return out
}

func wireEvents(events []weapon.Event) []WireEvent {
	out := make([]WireEvent, 0, len(events))
	for _, ev := range events {
		switch e := ev.(type) {
		case weapon.CellUpdate:
			out = append(out, WireEvent{Kind: "cell", Row: e.R, Col: e.C, State: e.State.String()})
		case weapon.ShipUpdate:
			out = append(out, WireEvent{Kind: "ship", ShipID: e.ShipID, SegmentIndex: e.SegmentIndex, NewHP: e.NewHP, Sunk: e.Sunk})
		case weapon.LogEntry:
			out = append(out, WireEvent{Kind: "log", Message: e.Message})
		}
	}
	return out
}
