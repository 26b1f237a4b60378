package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Configuration variables. Command line flags default to these so a
// deployment can tune them through the environment.
var (
	BoardWidth      = getEnvInt("SNAKE_BOARD_WIDTH", 15)
	BoardHeight     = getEnvInt("SNAKE_BOARD_HEIGHT", 15)
	InitialLength   = getEnvInt("SNAKE_INITIAL_LENGTH", 3)
	TickRate        = rate.Limit(getEnvInt("SNAKE_TICK_RATE", 3))
	TickBurst       = getEnvInt("SNAKE_TICK_BURST", 1)
	SpectatorBuffer = getEnvInt("SNAKE_SPECTATOR_BUFFER", 64)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
