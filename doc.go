// Package effects provides animated demoscene-style effects rendered on the
// CPU into flat ARGB pixel buffers.
//
// # Overview
//
// Each effect is a pure function of its configuration and a time value: given
// the same (config, time), a draw call produces a byte-identical frame. The
// caller owns the pixel buffer and the render loop; the library only fills
// the buffer. This keeps the effects trivially testable and lets any frontend
// (a window library, a PNG encoder, a framebuffer) present the frames.
//
// # Quick Start
//
//	import "github.com/ivan-guerra/effects"
//
//	p, err := effects.NewPlasma(800, 600, effects.ShapeRipple, effects.PaletteRainbow)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	buf := make([]uint32, 800*600)
//	p.Draw(buf, 0.0) // fill buf with the frame at t=0
//
// Buffers are row-major []uint32 with 0xAARRGGBB packing; alpha is always
// 0xFF. Time is in seconds; only relative deltas matter.
//
// # Interactive control
//
// Plasma exposes small mutators (NextShape, PrevShape, NextPalette,
// IncreaseScale, DecreaseScale) intended to be driven by key events between
// frames. See cmd/plasma for a complete ebiten frontend.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] with a *slog.Logger to
// enable diagnostics.
package effects
