package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/battlesnakeio/gridsnake/rules"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func createAPIServer(t *testing.T) (*Server, *Hub, *rules.Session) {
	hub := NewHub(8)
	s := playFrames(t, hub)
	return New(":1234", hub), hub, s
}

func TestListSessions(t *testing.T) {
	s, _, session := createAPIServer(t)

	req, _ := http.NewRequest("GET", "/sessions", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := &SessionsResponse{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(resp))
	require.Len(t, resp.Sessions, 1)
	require.Equal(t, session.ID(), resp.Sessions[0].ID)
}

func TestGetSession(t *testing.T) {
	s, _, session := createAPIServer(t)

	req, _ := http.NewRequest("GET", "/sessions/"+session.ID(), nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	f := &rules.Frame{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(f))
	require.Equal(t, session.Frame(), f)
}

func TestListFrames(t *testing.T) {
	s, _, session := createAPIServer(t)

	req, _ := http.NewRequest("GET", "/sessions/"+session.ID()+"/frames", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := &FramesResponse{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(resp))
	require.Len(t, resp.Frames, 2)
	require.Equal(t, 0, resp.Frames[0].Turn)
	require.Equal(t, 1, resp.Frames[1].Turn)
}

func TestUnknownSession(t *testing.T) {
	s, _, _ := createAPIServer(t)

	for _, path := range []string{"/sessions/abc_123", "/sessions/abc_123/frames", "/socket/abc_123"} {
		req, _ := http.NewRequest("GET", path, nil)
		rr := httptest.NewRecorder()
		s.hs.Handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}

func TestCORSHeaders(t *testing.T) {
	s, _, _ := createAPIServer(t)

	req, _ := http.NewRequest("GET", "/sessions", nil)
	req.Header.Set("Origin", "http://board.example.com")
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestStreamFrames(t *testing.T) {
	s, hub, session := createAPIServer(t)
	srv := httptest.NewServer(s.hs.Handler)
	defer srv.Close()

	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/socket/" + session.ID()
	c, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer c.Close()

	readFrame := func() *rules.Frame {
		mt, message, err := c.ReadMessage()
		require.NoError(t, err)
		require.Equal(t, websocket.TextMessage, mt)
		f := &rules.Frame{}
		require.NoError(t, json.Unmarshal(message, f))
		return f
	}

	require.Equal(t, 0, readFrame().Turn)
	require.Equal(t, 1, readFrame().Turn)

	session.Step()
	hub.Publish(session.Frame())
	require.Equal(t, 2, readFrame().Turn)

	session.Step()
	hub.Publish(session.Frame())
	last := readFrame()
	require.True(t, last.Done())
	require.Equal(t, rules.EndCauseWallCollision, last.Cause)

	_, _, err = c.ReadMessage()
	require.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
}
