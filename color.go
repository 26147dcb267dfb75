package effects

import "math"

// HSVToRGB converts an HSV color to 8-bit RGB channels using the standard
// hexagonal-cone model.
//
// h is the hue angle in degrees and may be any value, including negative;
// it is normalized into [0, 360) before sector selection. s and v are
// expected in [0, 1]. Out-of-range s or v is not an error: the arithmetic
// runs as-is and the final channels clamp to [0, 255].
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	c := v * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := v - c

	var r1, g1, b1 float64
	switch int(hp) {
	case 0:
		r1, g1, b1 = c, x, 0
	case 1:
		r1, g1, b1 = x, c, 0
	case 2:
		r1, g1, b1 = 0, c, x
	case 3:
		r1, g1, b1 = 0, x, c
	case 4:
		r1, g1, b1 = x, 0, c
	default:
		// Sector 5, and the fallback for any out-of-range index.
		r1, g1, b1 = c, 0, x
	}

	return channel8(r1 + m), channel8(g1 + m), channel8(b1 + m)
}

// PackARGB packs 8-bit RGB channels into a fully opaque 0xAARRGGBB pixel.
func PackARGB(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits a 0xAARRGGBB pixel into its channels.
func UnpackARGB(p uint32) (r, g, b, a uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p), uint8(p >> 24)
}

// channel8 narrows a [0, 1] color component to an 8-bit channel, rounding
// half-up. This is the single narrowing point for the whole package: every
// float that becomes a channel byte goes through the same clamp, so
// out-of-range components saturate instead of wrapping.
func channel8(x float64) uint8 {
	return uint8(clamp255(x*255 + 0.5))
}

// clamp255 clamps x to the range [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
