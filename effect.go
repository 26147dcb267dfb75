package effects

// Effect is an animated effect that renders complete frames into a
// caller-owned ARGB pixel buffer.
//
// Draw fills buf with the frame at time t (seconds). buf must hold exactly
// Width()*Height() pixels in row-major order; Draw returns an error and
// writes nothing otherwise. Implementations must be deterministic: the same
// (configuration, t) always yields the same buffer contents.
type Effect interface {
	Draw(buf []uint32, t float64) error
	Width() int
	Height() int
}
