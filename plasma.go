package effects

import (
	"errors"
	"fmt"
	"math"

	"github.com/ivan-guerra/effects/internal/parallel"
)

// Shape selects the scalar field evaluated per pixel.
type Shape int

const (
	ShapeRipple Shape = iota
	ShapeSpiral
	ShapeCircle
	ShapeSquare
	ShapeCheckerboard

	numShapes
)

// String returns the flag-friendly name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeRipple:
		return "ripple"
	case ShapeSpiral:
		return "spiral"
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeCheckerboard:
		return "checkerboard"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a shape name (as produced by Shape.String) back to its
// Shape value.
func ParseShape(name string) (Shape, error) {
	for s := Shape(0); s < numShapes; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("effects: unknown shape %q", name)
}

// Palette selects the color mapping applied to the scalar field.
type Palette int

const (
	PaletteRainbow Palette = iota
	PaletteBlueCyan
	PaletteHot
	PalettePurplePink
	PaletteBlackWhite

	numPalettes
)

// String returns the flag-friendly name of the palette.
func (p Palette) String() string {
	switch p {
	case PaletteRainbow:
		return "rainbow"
	case PaletteBlueCyan:
		return "blue-cyan"
	case PaletteHot:
		return "hot"
	case PalettePurplePink:
		return "purple-pink"
	case PaletteBlackWhite:
		return "black-white"
	default:
		return fmt.Sprintf("Palette(%d)", int(p))
	}
}

// ParsePalette maps a palette name (as produced by Palette.String) back to
// its Palette value.
func ParsePalette(name string) (Palette, error) {
	for p := Palette(0); p < numPalettes; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("effects: unknown palette %q", name)
}

// DefaultScale is the spatial frequency applied to scale-aware shapes when
// no WithScale option is given.
const DefaultScale = 10.0

// scaleStep is the delta applied by IncreaseScale and DecreaseScale.
const scaleStep = 1.0

// ErrBufferSize is returned by Draw when the buffer length does not match
// the configured width*height.
var ErrBufferSize = errors.New("effects: buffer length does not match dimensions")

// Plasma renders the classic animated plasma effect.
//
// Plasma is not safe for concurrent use: the caller's render loop must not
// overlap Draw calls on the same buffer, and mutators must only be called
// between frames.
type Plasma struct {
	width   int
	height  int
	shape   Shape
	palette Palette
	scale   float64
	pool    *parallel.Pool // nil for the serial path
}

var _ Effect = (*Plasma)(nil)

// NewPlasma creates a plasma renderer for a width x height pixel buffer.
// Both dimensions must be positive; the normalization math divides by the
// shorter half-dimension, so zero is rejected here rather than producing
// NaN frames later.
func NewPlasma(width, height int, shape Shape, palette Palette, opts ...Option) (*Plasma, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("effects: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Plasma{
		width:   width,
		height:  height,
		shape:   shape,
		palette: palette,
		scale:   cfg.scale,
	}
	if cfg.workers != 1 {
		p.pool = parallel.New(cfg.workers)
	}

	Logger().Debug("plasma created",
		"width", width, "height", height,
		"shape", shape, "palette", palette,
		"scale", p.scale, "workers", p.Workers())
	return p, nil
}

// Draw fills buf with the frame at time t (seconds since any fixed origin).
// buf must hold exactly Width()*Height() pixels; otherwise Draw returns
// ErrBufferSize and writes nothing. Every pixel is overwritten with a fully
// opaque 0xAARRGGBB value.
func (p *Plasma) Draw(buf []uint32, t float64) error {
	if len(buf) != p.width*p.height {
		return fmt.Errorf("%w: got %d, want %d", ErrBufferSize, len(buf), p.width*p.height)
	}
	if p.pool != nil {
		p.pool.Run(p.height, func(y0, y1 int) {
			p.drawRows(buf, t, y0, y1)
		})
		return nil
	}
	p.drawRows(buf, t, 0, p.height)
	return nil
}

// drawRows renders scanlines [y0, y1). Rows are independent, so disjoint
// ranges may run on separate goroutines with no synchronization.
func (p *Plasma) drawRows(buf []uint32, t float64, y0, y1 int) {
	w := float64(p.width)
	h := float64(p.height)
	centerX := w * 0.5
	centerY := h * 0.5
	minDim := math.Min(w, h) * 0.5

	for y := y0; y < y1; y++ {
		py := float64(y) - centerY
		row := buf[y*p.width : (y+1)*p.width]

		for x := range row {
			px := float64(x) - centerX
			dist := math.Sqrt(px*px+py*py) / minDim
			angle := math.Atan2(py, px)

			var raw float64
			switch p.shape {
			case ShapeSpiral:
				raw = math.Sin(dist*p.scale + angle*3 + t)
			case ShapeCircle:
				raw = math.Sin(dist*p.scale+t) + math.Sin(angle*2+t)
			case ShapeSquare:
				raw = math.Sin(px/minDim*p.scale+t) * math.Sin(py/minDim*p.scale+t)
			case ShapeCheckerboard:
				// Fixed frequencies; scale does not apply to this shape.
				raw = math.Sin(px/minDim*10)*math.Sin(py/minDim*10) +
					math.Sin((px/minDim+t)*5)*math.Sin((py/minDim+t)*5)
			default: // ShapeRipple
				raw = math.Sin(dist*p.scale - t*2)
			}

			// Circle and Checkerboard sum two unit sines, so v may leave
			// [0, 1]. That is accepted: hue normalization and the channel
			// clamp absorb it.
			v := raw*0.5 + 0.5

			var r, g, b uint8
			switch p.palette {
			case PaletteBlueCyan:
				r, g, b = HSVToRGB(v*120+180, 0.8, 1)
			case PaletteHot:
				r, g, b = HSVToRGB(v*60, 1, 1)
			case PalettePurplePink:
				r, g, b = HSVToRGB(v*60+270, 0.7, 1)
			case PaletteBlackWhite:
				gray := channel8(v)
				r, g, b = gray, gray, gray
			default: // PaletteRainbow
				r, g, b = HSVToRGB(v*360, 1, 1)
			}

			row[x] = PackARGB(r, g, b)
		}
	}
}

// Width returns the configured buffer width in pixels.
func (p *Plasma) Width() int { return p.width }

// Height returns the configured buffer height in pixels.
func (p *Plasma) Height() int { return p.height }

// Shape returns the current shape.
func (p *Plasma) Shape() Shape { return p.shape }

// Palette returns the current palette.
func (p *Plasma) Palette() Palette { return p.palette }

// Scale returns the current spatial-frequency scale.
func (p *Plasma) Scale() float64 { return p.scale }

// Workers returns the number of render goroutines Draw uses (1 for the
// serial path).
func (p *Plasma) Workers() int {
	if p.pool == nil {
		return 1
	}
	return p.pool.Workers()
}

// NextShape advances to the next shape, wrapping after the last.
func (p *Plasma) NextShape() {
	p.shape = (p.shape + 1) % numShapes
	Logger().Debug("shape changed", "shape", p.shape)
}

// PrevShape retreats to the previous shape, wrapping before the first.
func (p *Plasma) PrevShape() {
	p.shape = (p.shape + numShapes - 1) % numShapes
	Logger().Debug("shape changed", "shape", p.shape)
}

// NextPalette advances to the next palette, wrapping after the last.
func (p *Plasma) NextPalette() {
	p.palette = (p.palette + 1) % numPalettes
	Logger().Debug("palette changed", "palette", p.palette)
}

// IncreaseScale raises the pattern density by a fixed step. Scale is
// unbounded; it may pass through zero and go negative, which flips the
// pattern's symmetry but is not an error.
func (p *Plasma) IncreaseScale() {
	p.scale += scaleStep
	Logger().Debug("scale changed", "scale", p.scale)
}

// DecreaseScale lowers the pattern density by a fixed step.
func (p *Plasma) DecreaseScale() {
	p.scale -= scaleStep
	Logger().Debug("scale changed", "scale", p.scale)
}

// Close releases the render workers, if any. The renderer remains usable
// afterwards: Draw falls back to running inline.
func (p *Plasma) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
