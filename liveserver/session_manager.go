package liveserver

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// staleAfter mirrors the teacher's BattleshipSessionManager cleanup
// interval, generalized to one active match's reasonable lifetime.
const staleAfter = time.Minute * 30

// SessionManager owns every connected session, generalizing the teacher's
// BattleshipSessionManager (map + RWMutex, periodic stale-connection
// sweep).
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session, 16)}
}

func (sm *SessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	id := uuid.NewString()
	session := NewSession(id, conn, time.Now().UnixNano())
	sm.sessions[id] = session
	return session
}

func (sm *SessionManager) TerminateSession(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, id)
}

// CleanupPeriodically sweeps sessions older than staleAfter. Run as its
// own goroutine for the lifetime of the server.
func (sm *SessionManager) CleanupPeriodically() {
	for {
		time.Sleep(staleAfter)

		sm.mu.Lock()
		var toDelete []string
		for id, session := range sm.sessions {
			if time.Since(session.createdAt) > staleAfter {
				toDelete = append(toDelete, id)
			}
		}
		for _, id := range toDelete {
			delete(sm.sessions, id)
			log.Printf("liveserver: swept stale session %s", id)
		}
		sm.mu.Unlock()
	}
}
