package imageutil_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"pcbinspect/pkg/imageutil"

	"github.com/stretchr/testify/require"
)

func makeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255}) //nolint: gosec
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	return buf.Bytes()
}

func TestDimensions(t *testing.T) {
	w, h, err := imageutil.Dimensions(makeJPEG(t, 64, 48))
	require.NoError(t, err)
	require.Equal(t, 64, w)
	require.Equal(t, 48, h)
}

func TestDimensions_Garbage(t *testing.T) {
	_, _, err := imageutil.Dimensions([]byte("not an image"))
	require.Error(t, err)
}

func TestThumbnail_Scales(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, imageutil.Thumbnail(&out, makeJPEG(t, 200, 100), 50))

	w, h, err := imageutil.Dimensions(out.Bytes())
	require.NoError(t, err)
	require.Equal(t, 50, w)
	require.Equal(t, 25, h)
}

func TestThumbnail_NoUpscale(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, imageutil.Thumbnail(&out, makeJPEG(t, 40, 30), 400))

	w, h, err := imageutil.Dimensions(out.Bytes())
	require.NoError(t, err)
	require.Equal(t, 40, w)
	require.Equal(t, 30, h)
}
