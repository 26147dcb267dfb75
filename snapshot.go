package effects

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// ToImage converts a rendered ARGB frame to an image.RGBA.
// buf must hold exactly width*height pixels.
func ToImage(buf []uint32, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("effects: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}
	if len(buf) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBufferSize, len(buf), width*height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, p := range buf {
		r, g, b, a := UnpackARGB(p)
		img.Pix[i*4+0] = r
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = a
	}
	return img, nil
}

// WritePNG encodes a rendered ARGB frame as PNG.
func WritePNG(w io.Writer, buf []uint32, width, height int) error {
	img, err := ToImage(buf, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG writes a rendered ARGB frame to a PNG file.
func SavePNG(path string, buf []uint32, width, height int) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return WritePNG(f, buf, width, height)
}
