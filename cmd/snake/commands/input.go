package commands

import (
	"github.com/battlesnakeio/gridsnake/rules"
	termbox "github.com/nsf/termbox-go"
)

var keyDirections = map[termbox.Key]rules.Direction{
	termbox.KeyArrowUp:    rules.Up,
	termbox.KeyArrowDown:  rules.Down,
	termbox.KeyArrowLeft:  rules.Left,
	termbox.KeyArrowRight: rules.Right,
}

var runeDirections = map[rune]rules.Direction{
	'w': rules.Up, 'k': rules.Up,
	's': rules.Down, 'j': rules.Down,
	'a': rules.Left, 'h': rules.Left,
	'd': rules.Right, 'l': rules.Right,
}

// keyDirection maps a key press to a facing: arrows, WASD or HJKL.
func keyDirection(ev termbox.Event) (rules.Direction, bool) {
	if ev.Type != termbox.EventKey {
		return 0, false
	}
	if ev.Ch != 0 {
		c := ev.Ch
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		d, ok := runeDirections[c]
		return d, ok
	}
	d, ok := keyDirections[ev.Key]
	return d, ok
}

// isQuit reports whether the event is the quit signal.
func isQuit(ev termbox.Event) bool {
	if ev.Type != termbox.EventKey {
		return false
	}
	return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' || ev.Ch == 'Q'
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
