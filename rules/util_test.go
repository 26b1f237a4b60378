package rules

// seqRand replays a fixed list of values, wrapping around when exhausted.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func stepN(s *Session, n int) []Outcome {
	outcomes := []Outcome{}
	for i := 0; i < n; i++ {
		outcomes = append(outcomes, s.Step())
	}
	return outcomes
}

func tiles(b *Board, state TileState) map[Point]bool {
	out := map[Point]bool{}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := Point{X: x, Y: y}
			if b.Get(p) == state {
				out[p] = true
			}
		}
	}
	return out
}
