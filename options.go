package effects

// Option configures a renderer during creation.
//
// Example:
//
//	// Default density, serial rendering
//	p, err := effects.NewPlasma(800, 600, effects.ShapeSpiral, effects.PaletteHot)
//
//	// Denser pattern, four render workers
//	p, err := effects.NewPlasma(800, 600, effects.ShapeSpiral, effects.PaletteHot,
//	    effects.WithScale(18), effects.WithWorkers(4))
type Option func(*config)

// config holds optional renderer configuration.
type config struct {
	scale   float64
	workers int
}

// defaultConfig returns the default renderer options: DefaultScale density
// and a single (inline) render worker.
func defaultConfig() config {
	return config{
		scale:   DefaultScale,
		workers: 1,
	}
}

// WithScale sets the initial spatial-frequency scale. Any value is allowed,
// including zero and negative; see Plasma.IncreaseScale for the semantics.
func WithScale(scale float64) Option {
	return func(c *config) {
		c.scale = scale
	}
}

// WithWorkers sets the number of goroutines Draw spreads scanlines across.
// n == 1 keeps rendering inline on the caller's goroutine (the default);
// n <= 0 selects GOMAXPROCS workers. Renderers with workers hold goroutines
// until Close is called.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}
