package ioweb

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gnames/gnparks/pkg/filter"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = (pongWait * 9) / 10
	maxMsgSize   = 64 * 1024
	sendCapacity = 8
)

type registry struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*session)}
}

func (r *registry) add(s *session) {
	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()
}

func (r *registry) remove(s *session) {
	r.mu.Lock()
	delete(r.sessions, s.id)
	r.mu.Unlock()
}

func (r *registry) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range r.sessions {
		v.close()
		delete(r.sessions, k)
	}
}

// session is one browser tab. Selections are read and answered in order
// by the read loop, the write loop only sends prepared messages.
type session struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func newSession(conn *websocket.Conn) *session {
	return &session{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendCapacity),
		done: make(chan struct{}),
	}
}

func (s *session) close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("Cannot upgrade to websocket", "error", err)
		return
	}

	ss := newSession(conn)
	s.sessions.add(ss)
	s.metrics.sessions.Inc()
	slog.Debug("Session started", "session", ss.id, "remote", r.RemoteAddr)

	go ss.writeLoop()
	s.readLoop(ss)

	s.sessions.remove(ss)
	s.metrics.sessions.Dec()
	ss.close()
	slog.Debug("Session finished", "session", ss.id)
}

func (s *Server) readLoop(ss *session) {
	ss.conn.SetReadLimit(maxMsgSize)
	_ = ss.conn.SetReadDeadline(time.Now().Add(pongWait))
	ss.conn.SetPongHandler(func(string) error {
		return ss.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := ss.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("Session read error", "session", ss.id, "error", err)
			}
			return
		}

		var sel filter.Selection
		if err = enc.Decode(msg, &sel); err != nil {
			slog.Warn("Bad selection message", "session", ss.id, "error", err)
			sel = filter.Selection{}
		}

		v := s.view(sel)
		out, err := enc.Encode(v.Figure)
		if err != nil {
			slog.Error("Cannot encode figure", "session", ss.id, "error", err)
			continue
		}

		select {
		case ss.send <- out:
		case <-ss.done:
			return
		}
	}
}

func (ss *session) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ss.close()
	}()

	for {
		select {
		case <-ss.done:
			return
		case msg := <-ss.send:
			_ = ss.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ss.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Debug("Session write error", "session", ss.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = ss.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ss.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
