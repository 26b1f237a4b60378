package commands

import (
	"context"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/battlesnakeio/gridsnake/api"
	"github.com/battlesnakeio/gridsnake/config"
	"github.com/battlesnakeio/gridsnake/rules"
	"github.com/battlesnakeio/gridsnake/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	tickRate  = float64(config.TickRate)
	apiListen = ""
	logFile   = ""
)

func init() {
	addBoardFlags(playCmd)
	playCmd.Flags().Float64VarP(&tickRate, "tick-rate", "t", tickRate, "simulation steps per second")
	playCmd.Flags().Int64Var(&seed, "seed", 0, "food placement seed, 0 picks one from the clock")
	playCmd.Flags().StringVar(&apiListen, "api-listen", apiListen, "serve the spectator api on this address")
	playCmd.Flags().StringVar(&logFile, "log-file", logFile, "write logs to this file while the terminal is in use")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal, arrows/WASD/HJKL to turn, q or esc to quit",
	RunE: func(*cobra.Command, []string) error {
		last, err := play()
		if err != nil {
			return err
		}
		if last.Done() {
			fmt.Printf("You lost! Turn %d, length %d (%s)\n", last.Turn, last.Length, last.Cause)
		}
		return nil
	},
}

func play() (*rules.Frame, error) {
	closeLog, err := redirectLogs(logFile)
	if err != nil {
		return nil, err
	}
	defer closeLog()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := rules.NewSession(boardWidth, boardHeight, initialLength, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, errors.Wrap(err, "unable to create session")
	}
	log.WithFields(log.Fields{
		"SessionID": session.ID(),
		"Seed":      seed,
	}).Info("playing")

	hub := api.NewHub(config.SpectatorBuffer)
	if apiListen != "" {
		srv := api.New(apiListen, hub)
		go func() {
			if err := srv.WaitForExit(); err != nil {
				log.WithError(err).WithField("listen", apiListen).Error("spectator api failed")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.WithError(err).Warn("spectator api shutdown")
			}
		}()
	}
	defer hub.Close(session.ID())

	if err = termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialise terminal")
	}
	defer termbox.Close()

	ctx, quit := context.WithCancel(context.Background())
	defer quit()

	scr := &screen{}
	events := setupEventQueue()
	input := make(chan rules.Direction, 16)
	stopDispatch := dispatchEvents(ctx, quit, events, input, scr)

	w := &worker.Worker{
		Ticker: worker.NewTicker(rate.Limit(tickRate), config.TickBurst),
		Input:  input,
		OnFrame: func(f *rules.Frame) {
			hub.Publish(f)
			if err := scr.show(f); err != nil {
				log.WithError(err).Error("render failed")
			}
		},
	}

	last, err := w.Run(ctx, session)
	stopDispatch()
	if err != nil {
		// quit before the game was over
		return last, nil
	}

	if err := scr.setFooter("Game over! Press any key to exit..."); err != nil {
		log.WithError(err).Error("render failed")
	}
	for ev := range events {
		if ev.Type == termbox.EventKey {
			break
		}
	}
	return last, nil
}

// dispatchEvents turns terminal events into facing changes, redraws and the
// quit signal until the returned stop function is called.
func dispatchEvents(ctx context.Context, quit func(), events <-chan termbox.Event, input chan<- rules.Direction, scr *screen) func() {
	done := make(chan struct{})
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case ev := <-events:
				switch {
				case ev.Type == termbox.EventError:
					log.WithError(ev.Err).Error("terminal event error")
					quit()
					return
				case ev.Type == termbox.EventResize:
					if err := scr.redraw(); err != nil {
						log.WithError(err).Error("render failed")
					}
				case isQuit(ev):
					quit()
					return
				default:
					if d, ok := keyDirection(ev); ok {
						select {
						case input <- d:
						default:
							log.WithField("Facing", d).Debug("input queue full")
						}
					}
				}
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return func() {
		close(done)
		wg.Wait()
	}
}

// redirectLogs keeps log output off the terminal while termbox owns it.
func redirectLogs(path string) (func(), error) {
	if path == "" {
		log.SetOutput(ioutil.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open log file %s", path)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("unable to close log file")
		}
	}, nil
}
