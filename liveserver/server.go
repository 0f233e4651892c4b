package liveserver

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MaoJiayang/battleship-remaster/internal/weapon"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: time.Second * 5,
	ReadBufferSize:   2048,
	WriteBufferSize:  2048,
	CheckOrigin:      func(r *http.Request) bool { return true },
}

// Server hosts the naval engine over websockets, generalizing the
// teacher's api.Server functional-options construction.
type Server struct {
	port      int
	stage     string
	Processor *RequestProcessor
}

type Option func(*Server) error

const defaultPort = 8001

func NewServer(registry *weapon.Registry, optFuncs ...Option) *Server {
	server := &Server{port: defaultPort, stage: StageDev}
	for _, opt := range optFuncs {
		if err := opt(server); err != nil {
			panic(err)
		}
	}
	server.Processor = NewRequestProcessor(NewSessionManager(), registry)
	return server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("liveserver: invalid stage %q", stage)
		}
		s.stage = stage
		return nil
	}
}

func (s *Server) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", s.port)
}

// HandleWs upgrades the connection and hands it to its own goroutine, one
// per session, never sharing a *match.Match across goroutines (spec.md §5).
func (s *Server) HandleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("liveserver: upgrade failed:", err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	session := s.Processor.sessionManager.GenerateNewSession(conn)
	log.Printf("liveserver: session %s connected from %s", session.id, conn.RemoteAddr())
	go s.Processor.ProcessSession(session)
}

// ListenAndServe registers HandleWs on /battleship and blocks.
func (s *Server) ListenAndServe() error {
	go s.Processor.sessionManager.CleanupPeriodically()

	mux := http.NewServeMux()
	mux.HandleFunc("/battleship", s.HandleWs)

	log.Printf("liveserver: listening on %s", s.Addr())
	return http.ListenAndServe(s.Addr(), mux)
}
