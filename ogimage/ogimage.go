// Package ogimage turns arbitrary uploads into 1200x630 social sharing cards.
package ogimage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

const (
	Width       = 1200
	Height      = 630
	jpegQuality = 85
)

// Card describes an encoded social card.
type Card struct {
	Width          int
	Height         int
	SourceWidth    int
	SourceHeight   int
	Size           int
	ContentType    string
	CroppedToRatio bool
}

// Fit decodes src, center-crops it to the card ratio, scales it to
// Width x Height and encodes it as JPEG.
func Fit(src io.Reader) (Card, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return Card{}, nil, fmt.Errorf("ogimage: decode: %w", err)
	}

	bounds := img.Bounds()
	crop := coverRect(bounds, Width, Height)

	dst := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Card{}, nil, fmt.Errorf("ogimage: encode jpeg: %w", err)
	}

	return Card{
		Width:          Width,
		Height:         Height,
		SourceWidth:    bounds.Dx(),
		SourceHeight:   bounds.Dy(),
		Size:           buf.Len(),
		ContentType:    "image/jpeg",
		CroppedToRatio: crop != bounds,
	}, buf.Bytes(), nil
}

// coverRect returns the largest centered sub-rectangle of b with aspect w:h.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	if sw*h > sh*w {
		cw := sh * w / h
		x0 := b.Min.X + (sw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}
	ch := sw * h / w
	y0 := b.Min.Y + (sh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}
