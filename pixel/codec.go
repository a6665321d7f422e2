package pixel

import (
	"fmt"
	"image/color"
)

// Format is a controller wire format.
type Format uint8

// Supported wire formats.
const (
	// RGB444 packs two pixels into three bytes.
	RGB444 Format = iota + 1

	// RGB565 uses two bytes per pixel.
	RGB565

	// RGB666 uses three bytes per pixel, one per channel, low two bits cleared.
	RGB666
)

func (f Format) String() string {
	switch f {
	case RGB444:
		return "12-bit"
	case RGB565:
		return "16-bit"
	case RGB666:
		return "18-bit"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Model is the color model matching the format.
func (f Format) Model() color.Model {
	switch f {
	case RGB444:
		return CRGB12Model
	case RGB666:
		return CRGB18Model
	default:
		return CRGB16Model
	}
}

// Unit returns the number of pixels and bytes of the smallest encodable group.
func (f Format) Unit() (pixels, bytes int) {
	switch f {
	case RGB444:
		return 2, 3
	case RGB565:
		return 1, 2
	default:
		return 1, 3
	}
}

// Size is the number of wire bytes needed for n pixels.
//
// In 12-bit mode an odd n is rounded up to the next pair.
func (f Format) Size(n int) int {
	pixels, bytes := f.Unit()
	return (n + pixels - 1) / pixels * bytes
}

// AppendPair appends the encoding of two consecutive pixels.
func (f Format) AppendPair(dst []byte, c0, c1 RGB) []byte {
	switch f {
	case RGB444:
		r0, g0, b0 := c0.Channels()
		r1, g1, b1 := c1.Channels()
		return append(dst,
			r0&0xF0|g0>>4,
			b0&0xF0|r1>>4,
			g1&0xF0|b1>>4)
	default:
		return f.Append(f.Append(dst, c0), c1)
	}
}

// Append appends the encoding of a single pixel.
//
// In 12-bit mode a lone pixel is encoded as a pair of identical pixels; the
// controller drops the second one when the window holds a single pixel.
func (f Format) Append(dst []byte, c RGB) []byte {
	r, g, b := c.Channels()
	switch f {
	case RGB444:
		return f.AppendPair(dst, c, c)
	case RGB565:
		return append(dst,
			r&0xF8|g>>5,
			(g<<3)&0xE0|b>>3)
	default:
		return append(dst, r&0xFC, g&0xFC, b&0xFC)
	}
}

// AppendPixels appends the encoding of every color, in order.
//
// In 12-bit mode colors are consumed in pairs. An odd trailing color is paired with
// itself; callers should supply even counts.
func (f Format) AppendPixels(dst []byte, colors []RGB) []byte {
	if f != RGB444 {
		for _, c := range colors {
			dst = f.Append(dst, c)
		}
		return dst
	}
	i := 0
	for ; i+1 < len(colors); i += 2 {
		dst = f.AppendPair(dst, colors[i], colors[i+1])
	}
	if i < len(colors) {
		dst = f.Append(dst, colors[i])
	}
	return dst
}

// Pattern returns the bytes of one encoding unit filled with c.
func (f Format) Pattern(c RGB) []byte {
	_, n := f.Unit()
	return f.Append(make([]byte, 0, n), c)
}

// Decode converts raw wire bytes back to colors. Trailing bytes that do not form a
// complete unit are ignored.
func (f Format) Decode(raw []byte) []RGB {
	pixels, bytes := f.Unit()
	out := make([]RGB, 0, len(raw)/bytes*pixels)
	for ; len(raw) >= bytes; raw = raw[bytes:] {
		switch f {
		case RGB444:
			c0, c1 := Decode444(raw[0], raw[1], raw[2])
			out = append(out, c0, c1)
		case RGB565:
			out = append(out, Decode565(raw[0], raw[1]))
		default:
			out = append(out, Decode666(raw[0], raw[1], raw[2]))
		}
	}
	return out
}

// Decode444 unpacks a 12-bit byte triple into its two pixels. The low nibble of each
// channel is zero.
func Decode444(b0, b1, b2 byte) (c0, c1 RGB) {
	c0 = RGB(b0&0xF0)<<16 | RGB(b0&0x0F)<<12 | RGB(b1&0xF0)
	c1 = RGB(b1&0x0F)<<20 | RGB(b2&0xF0)<<8 | RGB(b2&0x0F)<<4
	return
}

// Decode565 unpacks a big-endian 5-6-5 pixel. The dropped low bits are zero.
func Decode565(b0, b1 byte) RGB {
	r := b0 & 0xF8
	g := b0<<5 | (b1&0xE0)>>3
	b := b1 << 3
	return RGB(r)<<16 | RGB(g)<<8 | RGB(b)
}

// Decode666 unpacks an 18-bit pixel.
func Decode666(b0, b1, b2 byte) RGB {
	return RGB(b0&0xFC)<<16 | RGB(b1&0xFC)<<8 | RGB(b2&0xFC)
}
