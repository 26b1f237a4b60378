package worker

import (
	"context"
	"testing"
	"time"

	"github.com/battlesnakeio/gridsnake/rules"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type frameLog struct {
	frames []*rules.Frame
}

func (fl *frameLog) add(f *rules.Frame) { fl.frames = append(fl.frames, f) }

func newSession(t *testing.T, width, height, length int) *rules.Session {
	s, err := rules.NewSession(width, height, length, nil)
	require.NoError(t, err)
	return s
}

func TestWorker_RunsUntilGameOver(t *testing.T) {
	s := newSession(t, 4, 4, 2)
	fl := &frameLog{}
	w := &Worker{Ticker: Immediate{}, OnFrame: fl.add}

	last, err := w.Run(context.Background(), s)
	require.NoError(t, err)
	require.True(t, last.Done())
	require.Equal(t, rules.EndCauseWallCollision, last.Cause)
	require.Equal(t, rules.Point{X: 0, Y: 3}, last.Head)

	require.Len(t, fl.frames, 5)
	require.Equal(t, 0, fl.frames[0].Turn)
	require.Equal(t, last, fl.frames[4])
}

func TestWorker_AppliesQueuedInput(t *testing.T) {
	s := newSession(t, 4, 4, 2)
	input := make(chan rules.Direction, 4)
	input <- rules.Right
	w := &Worker{Ticker: Immediate{}, Input: input}

	last, err := w.Run(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, rules.Point{X: 3, Y: 0}, last.Head)
	require.Equal(t, rules.Right, last.Facing)
	require.Equal(t, 3, last.Turn)
}

func TestWorker_LastInputWins(t *testing.T) {
	s := newSession(t, 4, 4, 2)
	input := make(chan rules.Direction, 4)
	input <- rules.Right
	input <- rules.Up
	input <- rules.Left
	w := &Worker{Ticker: Immediate{}, Input: input}

	last, err := w.Run(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, rules.EndCauseWallCollision, last.Cause)
	require.Equal(t, 0, last.Turn)
	require.Equal(t, rules.Left, last.Facing)
}

func TestWorker_RejectsReversal(t *testing.T) {
	s := newSession(t, 3, 3, 1)
	input := make(chan rules.Direction, 1)
	input <- rules.Down
	close(input)
	w := &Worker{Ticker: Immediate{}, Input: input}

	last, err := w.Run(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, rules.Up, last.Facing)
	require.Equal(t, rules.Point{X: 0, Y: 2}, last.Head)
}

func TestWorker_StopsWhenContextDone(t *testing.T) {
	s := newSession(t, 4, 4, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := &Worker{Ticker: Immediate{}}

	last, err := w.Run(ctx, s)
	require.Equal(t, context.Canceled, err)
	require.Equal(t, 0, last.Turn)
	require.False(t, last.Done())
	require.False(t, s.Done())
}

func TestWorker_RateLimitedTicks(t *testing.T) {
	s := newSession(t, 3, 3, 1)
	w := &Worker{Ticker: NewTicker(rate.Limit(200), 1)}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	start := time.Now()
	last, err := w.Run(ctx, s)
	require.NoError(t, err)
	require.True(t, last.Done())
	// three ticks, the first one is free
	require.True(t, time.Since(start) >= 5*time.Millisecond)
}
