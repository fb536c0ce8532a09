package fireworks

import "github.com/vovakirdan/tui-fireworks/internal/core"

// TrailLength is the number of ascent positions a rising firework remembers.
const TrailLength = 5

// Trail is a fixed-capacity ring buffer of recent ascent positions.
// Pushing onto a full trail evicts the oldest point.
type Trail struct {
	buf   [TrailLength]core.Point
	start int
	n     int
}

// Push records a position, dropping the oldest one when full.
func (t *Trail) Push(p core.Point) {
	if t.n < TrailLength {
		t.buf[(t.start+t.n)%TrailLength] = p
		t.n++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % TrailLength
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.n
}

// Points returns the stored points, oldest first.
func (t *Trail) Points() []core.Point {
	out := make([]core.Point, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.buf[(t.start+i)%TrailLength]
	}
	return out
}
