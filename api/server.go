// Package api serves read-only views of running sessions to spectators: the
// latest frames over HTTP and a live frame stream over a websocket.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/battlesnakeio/gridsnake/rules"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

var spectatorsActive = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "gridsnake",
		Subsystem: "api",
		Name:      "spectators_active",
		Help:      "Open websocket frame streams.",
	},
)

func init() { prometheus.MustRegister(spectatorsActive) }

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SessionsResponse lists the latest frame of every session.
type SessionsResponse struct {
	Sessions []*rules.Frame `json:"sessions"`
}

// FramesResponse lists every frame of a session.
type FramesResponse struct {
	Frames []*rules.Frame `json:"frames"`
}

// Server is the spectator http server.
type Server struct {
	hs  *http.Server
	hub *Hub
}

// New creates a server listening on addr and reading frames from hub.
func New(addr string, hub *Hub) *Server {
	s := &Server{hub: hub}

	router := httprouter.New()
	router.GET("/sessions", s.listSessions)
	router.GET("/sessions/:id", s.getSession)
	router.GET("/sessions/:id/frames", s.listFrames)
	router.GET("/socket/:id", s.streamFrames)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("spectator api serving")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting for open requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, &SessionsResponse{Sessions: s.hub.Latest()})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	f, ok := s.hub.Frame(ps.ByName("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) listFrames(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	frames, ok := s.hub.Frames(ps.ByName("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, &FramesResponse{Frames: frames})
}

func (s *Server) streamFrames(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	backlog, updates, cancel, ok := s.hub.Subscribe(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	defer cancel()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).WithField("SessionID", id).Warn("websocket upgrade failed")
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Warn("failed to close websocket")
		}
	}()

	spectatorsActive.Inc()
	defer spectatorsActive.Dec()

	// Reading is only needed to notice the client going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for _, f := range backlog {
		if err := conn.WriteJSON(f); err != nil {
			return
		}
	}
	for f := range updates {
		if err := conn.WriteJSON(f); err != nil {
			return
		}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
		log.WithError(err).WithField("SessionID", id).Debug("unable to send close")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}
