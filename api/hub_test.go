package api

import (
	"testing"

	"github.com/battlesnakeio/gridsnake/rules"
	"github.com/stretchr/testify/require"
)

func playFrames(t *testing.T, hub *Hub) *rules.Session {
	s, err := rules.NewSession(3, 3, 1, nil)
	require.NoError(t, err)
	hub.Publish(s.Frame())
	s.Step()
	hub.Publish(s.Frame())
	return s
}

func TestHubFrames(t *testing.T) {
	hub := NewHub(4)
	s := playFrames(t, hub)

	f, ok := hub.Frame(s.ID())
	require.True(t, ok)
	require.Equal(t, 1, f.Turn)

	frames, ok := hub.Frames(s.ID())
	require.True(t, ok)
	require.Len(t, frames, 2)
	require.Equal(t, 0, frames[0].Turn)

	_, ok = hub.Frame("missing")
	require.False(t, ok)
	_, ok = hub.Frames("missing")
	require.False(t, ok)

	other := playFrames(t, hub)
	latest := hub.Latest()
	require.Len(t, latest, 2)
	require.Equal(t, s.ID(), latest[0].ID)
	require.Equal(t, other.ID(), latest[1].ID)
}

func TestHubSubscribe(t *testing.T) {
	hub := NewHub(4)
	s := playFrames(t, hub)

	backlog, updates, cancel, ok := hub.Subscribe(s.ID())
	require.True(t, ok)
	defer cancel()
	require.Len(t, backlog, 2)

	s.Step()
	hub.Publish(s.Frame())
	f := <-updates
	require.Equal(t, 2, f.Turn)

	// stepping off the board ends the stream
	s.Step()
	hub.Publish(s.Frame())
	f = <-updates
	require.True(t, f.Done())
	_, open := <-updates
	require.False(t, open)

	// late subscribers get the backlog and a closed channel
	backlog, updates, cancel, ok = hub.Subscribe(s.ID())
	require.True(t, ok)
	defer cancel()
	require.Len(t, backlog, 4)
	_, open = <-updates
	require.False(t, open)

	_, _, _, ok = hub.Subscribe("missing")
	require.False(t, ok)
}

func TestHubSlowSpectatorDropsFrames(t *testing.T) {
	hub := NewHub(1)
	s, err := rules.NewSession(10, 10, 1, nil)
	require.NoError(t, err)
	hub.Publish(s.Frame())

	_, updates, cancel, ok := hub.Subscribe(s.ID())
	require.True(t, ok)
	defer cancel()

	for i := 0; i < 3; i++ {
		s.Step()
		hub.Publish(s.Frame())
	}
	f := <-updates
	require.Equal(t, 1, f.Turn)

	frames, _ := hub.Frames(s.ID())
	require.Len(t, frames, 4)
}

func TestHubCloseAndCancel(t *testing.T) {
	hub := NewHub(2)
	s := playFrames(t, hub)

	_, first, cancelFirst, ok := hub.Subscribe(s.ID())
	require.True(t, ok)
	_, second, cancelSecond, ok := hub.Subscribe(s.ID())
	require.True(t, ok)
	defer cancelSecond()

	cancelFirst()
	cancelFirst()
	_, open := <-first
	require.False(t, open)

	hub.Close(s.ID())
	_, open = <-second
	require.False(t, open)

	s.Step()
	hub.Publish(s.Frame())
	frames, _ := hub.Frames(s.ID())
	require.Len(t, frames, 2)

	hub.Close("missing")
}
