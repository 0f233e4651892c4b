package liveserver

import (
	"log"
	"math/rand"
	"net"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MaoJiayang/battleship-remaster/internal/match"
)

const (
	maxWriteRetries uint8 = 2
	backOffFactor   uint8 = 2
)

// Session is one connected human player: its websocket, its own RNG
// (threaded explicitly per spec.md's no-ambient-randomness rule, never
// shared with another session), and — once CodeInitMatch has run — the
// Match it plays as SideA against the AI on SideB. Generalizes the
// teacher's connection.Session.
type Session struct {
	id        string
	conn      *websocket.Conn
	rng       *rand.Rand
	createdAt time.Time

	m *match.Match
}

func NewSession(id string, conn *websocket.Conn, seed int64) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		rng:       rand.New(rand.NewSource(seed)),
		createdAt: time.Now(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Println("liveserver: timeout:", err)
		return ConnLoopRetry
	}
	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Println("liveserver: server under load:", err)
		return ConnLoopRetry
	}
	if websocket.IsCloseError(err, websocket.CloseAbnormalClosure) {
		log.Println("liveserver: abnormal closure:", err)
		return ConnLoopAbnormalClosureRetry
	}
	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		log.Println("liveserver: client closed:", err)
		return ConnLoopBreak
	}
	log.Println("liveserver: unexpected error:", err)
	return ConnLoopBreak
}

// writeWithRetry writes a JSON message, retrying transient failures with
// linear backoff before giving up (spec.md §7 error kind 4's analogue:
// transport failures never retry silently forever).
func (s *Session) writeWithRetry(msg interface{}) error {
	var retries uint8
	for {
		err := s.conn.WriteJSON(msg)
		if err == nil {
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries >= maxWriteRetries {
				return NewConnErr(ConnLoopBreak).AddDesc("max write retries reached")
			}
			retries++
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
			continue
		default:
			return NewConnErr(ConnLoopBreak).AddDesc(err.Error())
		}
	}
}

// readFrame reads one frame, retrying transient read errors the same way
// writeWithRetry does.
func (s *Session) readFrame() ([]byte, error) {
	var retries uint8
	for {
		_, payload, err := s.conn.ReadMessage()
		if err == nil {
			return payload, nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries >= maxWriteRetries {
				return nil, err
			}
			retries++
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
			continue
		default:
			return nil, err
		}
	}
}
