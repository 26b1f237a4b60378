package commands

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/battlesnakeio/gridsnake/rules"
	"github.com/battlesnakeio/gridsnake/worker"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	simSeed   int64 = 1
	script          = ""
	printInfo       = false
	noFood          = false
)

func init() {
	addBoardFlags(simCmd)
	simCmd.Flags().Int64Var(&simSeed, "seed", simSeed, "food placement seed")
	simCmd.Flags().StringVarP(&script, "script", "s", script, "moves to play, one of U D L R or . per tick")
	simCmd.Flags().BoolVarP(&printInfo, "print", "p", printInfo, "print the board after every tick")
	simCmd.Flags().BoolVar(&noFood, "no-food", noFood, "never place food")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "runs a scripted session without a terminal and dumps the final frame",
	RunE: func(c *cobra.Command, args []string) error {
		_, err := runSim(c.OutOrStdout(), boardWidth, boardHeight, initialLength, script)
		return err
	},
}

func runSim(out io.Writer, width, height, length int, script string) (*rules.Frame, error) {
	var rng rules.RandSource
	if !noFood {
		rng = rand.New(rand.NewSource(simSeed))
	}
	session, err := rules.NewSession(width, height, length, rng)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create session")
	}
	moves, err := worker.ParseScript(script)
	if err != nil {
		return nil, errors.Wrap(err, "invalid script")
	}

	var onFrame func(*rules.Frame)
	if printInfo {
		onFrame = func(f *rules.Frame) {
			fmt.Fprintf(out, "turn %d\n%s\n", f.Turn, f.Board())
		}
	}
	last := worker.RunScript(session, moves, onFrame)
	spew.Fdump(out, last)
	return last, nil
}
