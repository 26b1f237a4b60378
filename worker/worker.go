// Package worker drives a session. It owns the tick source, feeds queued
// input into the session between ticks and hands every frame to an observer.
package worker

import (
	"context"

	"github.com/battlesnakeio/gridsnake/rules"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

var (
	sessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gridsnake",
			Subsystem: "worker",
			Name:      "sessions_active",
			Help:      "Sessions currently being driven.",
		},
	)
	runsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gridsnake",
			Subsystem: "worker",
			Name:      "runs_total",
			Help:      "Finished runs, by result.",
		},
		[]string{"result"},
	)
)

func init() { prometheus.MustRegister(sessionsActive, runsCounter) }

// Worker runs a single session to completion.
type Worker struct {
	// Ticker paces the steps, one step per Wait.
	Ticker Ticker
	// Input carries facing changes. Everything queued when a tick fires is
	// applied in order before the step, so the last accepted change wins.
	Input <-chan rules.Direction
	// OnFrame, if set, receives the initial frame and one frame per step.
	OnFrame func(*rules.Frame)
}

// Run steps s until it ends or ctx is done and returns the last frame. The
// error is only non-nil when the run was cut short by ctx.
func (w *Worker) Run(ctx context.Context, s *rules.Session) (*rules.Frame, error) {
	sessionsActive.Inc()
	defer sessionsActive.Dec()

	logger := log.WithField("SessionID", s.ID())
	logger.Info("session started")

	frame := s.Frame()
	w.publish(frame)

	for !s.Done() {
		if err := w.Ticker.Wait(ctx); err != nil {
			logger.WithError(err).WithField("Turn", s.Turn()).Info("session stopped")
			runsCounter.WithLabelValues("stopped").Inc()
			return frame, err
		}
		w.drainInput(s)
		s.Step()
		frame = s.Frame()
		w.publish(frame)
	}

	logger.WithFields(log.Fields{
		"Turn":   frame.Turn,
		"Length": frame.Length,
		"Cause":  frame.Cause,
	}).Info("session complete")
	runsCounter.WithLabelValues("complete").Inc()
	return frame, nil
}

func (w *Worker) drainInput(s *rules.Session) {
	for {
		select {
		case d, ok := <-w.Input:
			if !ok {
				return
			}
			if !s.SetFacing(d) {
				log.WithFields(log.Fields{
					"SessionID": s.ID(),
					"Facing":    s.Facing(),
					"Requested": d,
				}).Debug("facing change rejected")
			}
		default:
			return
		}
	}
}

func (w *Worker) publish(f *rules.Frame) {
	if w.OnFrame != nil {
		w.OnFrame(f)
	}
}
