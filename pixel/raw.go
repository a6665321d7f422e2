package pixel

import (
	"image"
	"image/color"
)

// Raw is an image whose pixels are stored in a controller wire format.
//
// Pixels are laid out in raster order without row padding, exactly as they stream
// through a controller window, so Pix can be handed to a buffer fill or obtained
// from a memory read.
type Raw struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Format of Pix.
	Format Format

	// Pix are the encoded pixels.
	Pix []byte
}

// NewRaw allocates a w by h image in the given format.
func NewRaw(w, h int, f Format) *Raw {
	return &Raw{
		Rect:   image.Rect(0, 0, w, h),
		Format: f,
		Pix:    make([]byte, f.Size(w*h)),
	}
}

// RawFrom wraps already encoded bytes, for example the result of a memory read.
func RawFrom(w, h int, f Format, pix []byte) *Raw {
	return &Raw{
		Rect:   image.Rect(0, 0, w, h),
		Format: f,
		Pix:    pix,
	}
}

func (p *Raw) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Raw) ColorModel() color.Model {
	return p.Format.Model()
}

// pixIndex returns the raster index of (x, y), or -1 when out of bounds.
func (p *Raw) pixIndex(x, y int) int {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return -1
	}
	return (y-p.Rect.Min.Y)*p.Rect.Dx() + (x - p.Rect.Min.X)
}

func (p *Raw) At(x, y int) color.Color {
	i := p.pixIndex(x, y)
	if i < 0 {
		return color.Transparent
	}
	return p.Format.Model().Convert(p.RGBAt(i))
}

// RGBAt decodes the pixel at raster index i.
func (p *Raw) RGBAt(i int) RGB {
	switch p.Format {
	case RGB444:
		o := i / 2 * 3
		if o+2 >= len(p.Pix) {
			return Black
		}
		c0, c1 := Decode444(p.Pix[o], p.Pix[o+1], p.Pix[o+2])
		if i&1 == 0 {
			return c0
		}
		return c1
	case RGB565:
		o := i * 2
		if o+1 >= len(p.Pix) {
			return Black
		}
		return Decode565(p.Pix[o], p.Pix[o+1])
	default:
		o := i * 3
		if o+2 >= len(p.Pix) {
			return Black
		}
		return Decode666(p.Pix[o], p.Pix[o+1], p.Pix[o+2])
	}
}

func (p *Raw) Set(x, y int, c color.Color) {
	if i := p.pixIndex(x, y); i >= 0 {
		p.SetRGB(i, FromColor(c))
	}
}

// SetRGB encodes c at raster index i.
func (p *Raw) SetRGB(i int, c RGB) {
	r, g, b := c.Channels()
	switch p.Format {
	case RGB444:
		o := i / 2 * 3
		if o+2 >= len(p.Pix) {
			return
		}
		if i&1 == 0 {
			p.Pix[o] = r&0xF0 | g>>4
			p.Pix[o+1] = b&0xF0 | p.Pix[o+1]&0x0F
		} else {
			p.Pix[o+1] = p.Pix[o+1]&0xF0 | r>>4
			p.Pix[o+2] = g&0xF0 | b>>4
		}
	case RGB565:
		o := i * 2
		if o+1 >= len(p.Pix) {
			return
		}
		RGB565.Append(p.Pix[o:o], c)
	default:
		o := i * 3
		if o+2 >= len(p.Pix) {
			return
		}
		RGB666.Append(p.Pix[o:o], c)
	}
}

// Fill the image with a single color.
func (p *Raw) Fill(c color.Color) {
	pattern := p.Format.Pattern(FromColor(c))
	for i := 0; i+len(pattern) <= len(p.Pix); i += len(pattern) {
		copy(p.Pix[i:], pattern)
	}
}

// Clear the image to black.
func (p *Raw) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}
