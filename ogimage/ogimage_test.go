package ogimage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestFitProducesCardSizedJPEG(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		cropped bool
	}{
		{"square", 400, 400, true},
		{"tall", 300, 900, true},
		{"wide", 2000, 500, true},
		{"exact ratio", 240, 126, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, data, err := Fit(pngOf(t, tt.w, tt.h))
			require.NoError(t, err)
			assert.Equal(t, Width, card.Width)
			assert.Equal(t, Height, card.Height)
			assert.Equal(t, tt.w, card.SourceWidth)
			assert.Equal(t, tt.h, card.SourceHeight)
			assert.Equal(t, len(data), card.Size)
			assert.Equal(t, "image/jpeg", card.ContentType)
			assert.Equal(t, tt.cropped, card.CroppedToRatio)

			decoded, err := jpeg.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, Width, Height), decoded.Bounds())
		})
	}
}

func TestFitRejectsGarbage(t *testing.T) {
	_, _, err := Fit(strings.NewReader("not an image"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ogimage: decode")
}

func TestCoverRect(t *testing.T) {
	tests := []struct {
		in   image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 1200, 630), image.Rect(0, 0, 1200, 630)},
		{image.Rect(0, 0, 2400, 630), image.Rect(600, 0, 1800, 630)},
		{image.Rect(0, 0, 1200, 1000), image.Rect(0, 185, 1200, 815)},
		{image.Rect(10, 10, 1210, 640), image.Rect(10, 10, 1210, 640)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, coverRect(tt.in, Width, Height), "%v", tt.in)
	}
}
