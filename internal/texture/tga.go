package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// TGA decoding errors.
var (
	ErrTGATruncated   = errors.New("TGA data truncated")
	ErrTGAUnsupported = errors.New("unsupported TGA variant")
)

const tgaHeaderSize = 18

// DecodeTGA decodes a TGA image.
// Supports uncompressed (type 2) and RLE compressed (type 10) true-color
// images at 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("%w: header", ErrTGATruncated)
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped", ErrTGAUnsupported)
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("%w: type %d", ErrTGAUnsupported, imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrTGAUnsupported, bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("%w: image ID", ErrTGATruncated)
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		height:      height,
		pixelSize:   bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = d.decodeRaw()
	} else {
		err = d.decodeRLE()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	pos         int
	width       int
	height      int
	pixelSize   int
	topToBottom bool
}

// readPixel reads one BGR(A) pixel from the source.
func (d *tgaDecoder) readPixel() (color.RGBA, bool) {
	if d.pos+d.pixelSize > len(d.src) {
		return color.RGBA{}, false
	}
	p := d.src[d.pos:]
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.pixelSize == 4 {
		c.A = p[3]
	}
	d.pos += d.pixelSize
	return c, true
}

// set stores pixel i in file order, flipping rows for bottom-up files.
func (d *tgaDecoder) set(i int, c color.RGBA) {
	x := i % d.width
	y := i / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) decodeRaw() error {
	count := d.width * d.height
	if len(d.src) < count*d.pixelSize {
		return fmt.Errorf("%w: pixel data", ErrTGATruncated)
	}
	for i := 0; i < count; i++ {
		c, _ := d.readPixel()
		d.set(i, c)
	}
	return nil
}

func (d *tgaDecoder) decodeRLE() error {
	count := d.width * d.height
	i := 0
	for i < count {
		if d.pos >= len(d.src) {
			return fmt.Errorf("%w: RLE packet %d of %d pixels", ErrTGATruncated, i, count)
		}
		packet := d.src[d.pos]
		d.pos++
		run := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := d.readPixel()
			if !ok {
				return fmt.Errorf("%w: RLE pixel", ErrTGATruncated)
			}
			for n := 0; n < run && i < count; n++ {
				d.set(i, c)
				i++
			}
			continue
		}

		for n := 0; n < run && i < count; n++ {
			c, ok := d.readPixel()
			if !ok {
				return fmt.Errorf("%w: raw pixel", ErrTGATruncated)
			}
			d.set(i, c)
			i++
		}
	}
	return nil
}
