package rules

import "github.com/pkg/errors"

// ErrTailOverflow is raised when more segments are pushed than the board can
// hold.
var ErrTailOverflow = errors.New("rules: tail overflow")

// tail is the history of head positions, oldest first. It is a ring with a
// capacity of one entry per board cell, a snake can never need more.
type tail struct {
	buf   []Point
	start int
	n     int
}

func newTail(capacity int) *tail {
	return &tail{buf: make([]Point, capacity)}
}

func (t *tail) len() int { return t.n }

func (t *tail) push(p Point) {
	if t.n == len(t.buf) {
		panic(errors.Wrapf(ErrTailOverflow, "capacity %d", len(t.buf)))
	}
	t.buf[(t.start+t.n)%len(t.buf)] = p
	t.n++
}

// trim drops the oldest entries until at most keep remain.
func (t *tail) trim(keep int) {
	if keep < 0 {
		keep = 0
	}
	if t.n <= keep {
		return
	}
	drop := t.n - keep
	t.start = (t.start + drop) % len(t.buf)
	t.n = keep
}

// at returns the i-th entry, 0 being the oldest.
func (t *tail) at(i int) Point {
	return t.buf[(t.start+i)%len(t.buf)]
}

// points copies the entries out, oldest first.
func (t *tail) points() []Point {
	out := make([]Point, t.n)
	for i := range out {
		out[i] = t.at(i)
	}
	return out
}
