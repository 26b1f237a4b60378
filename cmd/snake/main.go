package main

import (
	"github.com/battlesnakeio/gridsnake/cmd/snake/commands"
)

func main() {
	commands.Execute()
}
