// Package imageutil inspects and rescales the JPEG/PNG payloads exchanged with
// the inspection backend.
package imageutil

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder for uploads
	"io"

	"golang.org/x/image/draw"
)

// DefaultQuality is the JPEG quality used when re-encoding thumbnails.
const DefaultQuality = 85

// Dimensions returns the width and height of an encoded image without
// decoding its pixels.
func Dimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("could not decode image header: %w", err)
	}

	return cfg.Width, cfg.Height, nil
}

// Thumbnail decodes data and writes a JPEG scaled to width pixels, keeping the
// aspect ratio. Images narrower than width are re-encoded unscaled.
func Thumbnail(w io.Writer, data []byte, width int) error {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	b := src.Bounds()
	if width <= 0 || width >= b.Dx() {
		return encode(w, src)
	}

	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return encode(w, dst)
}

func encode(w io.Writer, img image.Image) error {
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultQuality}); err != nil {
		return fmt.Errorf("could not encode jpeg: %w", err)
	}

	return nil
}
