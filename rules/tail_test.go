package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTailPushTrim(t *testing.T) {
	tl := newTail(4)
	tl.push(Point{X: 0, Y: 0})
	tl.push(Point{X: 1, Y: 0})
	tl.push(Point{X: 2, Y: 0})
	require.Equal(t, 3, tl.len())

	tl.trim(3)
	require.Equal(t, []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, tl.points())

	tl.trim(2)
	require.Equal(t, []Point{{X: 1, Y: 0}, {X: 2, Y: 0}}, tl.points())

	tl.trim(-1)
	require.Equal(t, 0, tl.len())
	require.Equal(t, []Point{}, tl.points())
}

func TestTailWrapsAround(t *testing.T) {
	tl := newTail(3)
	for x := 0; x < 10; x++ {
		tl.push(Point{X: x})
		tl.trim(2)
	}
	require.Equal(t, []Point{{X: 8}, {X: 9}}, tl.points())
}

func TestTailOverflowPanics(t *testing.T) {
	tl := newTail(2)
	tl.push(Point{X: 0})
	tl.push(Point{X: 1})
	require.Panics(t, func() { tl.push(Point{X: 2}) })
}
