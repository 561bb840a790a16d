// Package texture loads image files into RGBA pixel data for mesh textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif" // registered for image.Decode
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Decode decodes image data, choosing the decoder from the filename's
// extension. BMP and TGA are handled explicitly; anything else goes through
// the registered image formats (PNG, JPEG, GIF).
func Decode(name string, data []byte) (*image.RGBA, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tga":
		return DecodeTGA(data)
	case ".bmp":
		img, err := bmp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding BMP: %w", err)
		}
		return ToRGBA(img), nil
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding image: %w", err)
		}
		return ToRGBA(img), nil
	}
}

// ToRGBA converts any image to *image.RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy of img with its rows reversed. OpenGL expects
// the first row of texture data to be the bottom of the image.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		dstY := b.Dy() - 1 - y
		copy(out.Pix[dstY*out.Stride:dstY*out.Stride+rowLen], src)
	}
	return out
}
