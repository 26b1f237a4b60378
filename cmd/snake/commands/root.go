package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/gridsnake/config"
	"github.com/battlesnakeio/gridsnake/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake plays and simulates the grid snake game",
	Version: version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "invalid log level")
		}
		log.SetLevel(level)
		prometheus()
		return nil
	},
}

var (
	logLevel = "info"

	boardWidth    = config.BoardWidth
	boardHeight   = config.BoardHeight
	initialLength = config.InitialLength
	seed          int64
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level, one of: [debug, info, warn, error]")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// addBoardFlags registers the flags shared by commands building a session.
func addBoardFlags(c *cobra.Command) {
	c.Flags().IntVarP(&boardWidth, "width", "W", boardWidth, "board width")
	c.Flags().IntVarP(&boardHeight, "height", "H", boardHeight, "board height")
	c.Flags().IntVarP(&initialLength, "length", "l", initialLength, "initial body length")
}
