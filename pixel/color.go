package pixel

import "image/color"

// Models for the wire color types.
var (
	CRGB12Model color.Model = color.ModelFunc(crgb12Model)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
	CRGB18Model color.Model = color.ModelFunc(crgb18Model)
)

// Common colors.
const (
	Black   RGB = 0x000000
	White   RGB = 0xFFFFFF
	Red     RGB = 0xFF0000
	Green   RGB = 0x00FF00
	Blue    RGB = 0x0000FF
	Yellow  RGB = 0xFFFF00
	Cyan    RGB = 0x00FFFF
	Magenta RGB = 0xFF00FF
	Orange  RGB = 0xFFA500
	Gray    RGB = 0x808080
)

// RGB is a 24-bit color stored as 0xRRGGBB. The high byte is unused.
type RGB uint32

// FromColor converts any color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	if v, ok := c.(RGB); ok {
		return v & 0xFFFFFF
	}
	r, g, b, _ := c.RGBA()
	return RGB((r>>8)<<16 | (g>>8)<<8 | b>>8)
}

// Channels returns the 8-bit red, green and blue components.
func (c RGB) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>16) & 0xff
	g = uint32(c>>8) & 0xff
	b = uint32(c) & 0xff
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// ToRGBA returns the color as a fully opaque [color.RGBA].
func (c RGB) ToRGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// CRGB12 represents a 12-bit 4-4-4 RGB color.
type CRGB12 struct {
	// CIgnore, 4, CRed, 4, CGreen, 4, CBlue, 4
	V uint16
}

func (c CRGB12) RGBA() (r, g, b, a uint32) {
	red := uint32(c.V>>8) & 0xf
	grn := uint32(c.V>>4) & 0xf
	blu := uint32(c.V) & 0xf
	// Duplicate the nibble into every nibble of the 16-bit component.
	red |= red<<4 | red<<8 | red<<12
	grn |= grn<<4 | grn<<8 | grn<<12
	blu |= blu<<4 | blu<<8 | blu<<12
	return red, grn, blu, 0xffff
}

func crgb12Model(c color.Color) color.Color {
	if _, ok := c.(CRGB12); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return CRGB12{uint16((r&0xF000)>>4 | (g&0xF000)>>8 | (b&0xF000)>>12)}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xF800) >> 8
	grn := (c.V & 0x07E0) >> 3
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func crgb16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case CRGB16:
		return c
	case RGB:
		r, g, b := c.Channels()
		return CRGB16{uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3}
	default:
		r, g, b, _ := c.RGBA()
		r = (r & 0xF800)
		g = (g & 0xFC00) >> 5
		b = (b & 0xF800) >> 11
		return CRGB16{uint16(r | g | b)}
	}
}

// CRGB18 represents an 18-bit 6-6-6 RGB color, stored as one byte per channel with
// the low two bits of each byte cleared.
type CRGB18 struct {
	R, G, B uint8
}

func (c CRGB18) RGBA() (r, g, b, a uint32) {
	expand := func(v uint8) uint32 {
		y := uint32(v&0xFC) | uint32(v>>6)
		return y | y<<8
	}
	return expand(c.R), expand(c.G), expand(c.B), 0xffff
}

func crgb18Model(c color.Color) color.Color {
	if _, ok := c.(CRGB18); ok {
		return c
	}
	r, g, b := FromColor(c).Channels()
	return CRGB18{R: r & 0xFC, G: g & 0xFC, B: b & 0xFC}
}
