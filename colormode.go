package display

import (
	"fmt"
	"log"

	"github.com/BeatGlow/n70display/pixel"
)

// ColorMode is the interface pixel format, its value is the COLMOD parameter.
type ColorMode uint8

// Supported color modes.
const (
	Color12Bit ColorMode = 0x03
	Color16Bit ColorMode = 0x05
	Color18Bit ColorMode = 0x06
)

func (m ColorMode) String() string {
	switch m {
	case Color12Bit:
		return "12-bit"
	case Color16Bit:
		return "16-bit"
	case Color18Bit:
		return "18-bit"
	default:
		return fmt.Sprintf("ColorMode(%#02x)", uint8(m))
	}
}

// Format is the wire format of the mode.
func (m ColorMode) Format() pixel.Format {
	switch m {
	case Color12Bit:
		return pixel.RGB444
	case Color18Bit:
		return pixel.RGB666
	default:
		return pixel.RGB565
	}
}

// Colour set tables, loaded into the controller lookup table for 12 and 16 bit modes.
// Each holds 32 red, 64 green and 32 blue levels.
var (
	rgb12Table = [128]byte{
		0x00, 0x04, 0x08, 0x0C, 0x10, 0x14, 0x18, 0x1C, 0x20, 0x24, 0x28, 0x2C, 0x30, 0x34, 0x38, 0x3F,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,

		0x00, 0x04, 0x08, 0x0C, 0x10, 0x14, 0x18, 0x1C, 0x20, 0x24, 0x28, 0x2C, 0x30, 0x34, 0x38, 0x3F,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x04, 0x08, 0x0C, 0x10, 0x14, 0x18, 0x1C, 0x20, 0x24, 0x28, 0x2C, 0x30, 0x34, 0x38, 0x3F,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,

		0x00, 0x04, 0x08, 0x0C, 0x10, 0x14, 0x18, 0x1C, 0x20, 0x24, 0x28, 0x2C, 0x30, 0x34, 0x38, 0x3F,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	rgb16Table = [128]byte{
		0x00, 0x02, 0x04, 0x06, 0x08, 0x0A, 0x0C, 0x0E, 0x10, 0x12, 0x14, 0x16, 0x18, 0x1A, 0x1C, 0x1E,
		0x20, 0x22, 0x24, 0x26, 0x28, 0x2A, 0x2C, 0x2E, 0x30, 0x32, 0x34, 0x36, 0x38, 0x3A, 0x3C, 0x3F,

		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F,
		0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2A, 0x2B, 0x2C, 0x2D, 0x2E, 0x2F,
		0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, 0x3A, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F,

		0x00, 0x02, 0x04, 0x06, 0x08, 0x0A, 0x0C, 0x0E, 0x10, 0x12, 0x14, 0x16, 0x18, 0x1A, 0x1C, 0x1E,
		0x20, 0x22, 0x24, 0x26, 0x28, 0x2A, 0x2C, 0x2E, 0x30, 0x32, 0x34, 0x36, 0x38, 0x3A, 0x3C, 0x3F,
	}
)

// ColorMode returns the active color mode.
func (d *Driver) ColorMode() ColorMode {
	return d.mode
}

// Format returns the wire format of the active color mode.
func (d *Driver) Format() pixel.Format {
	return d.format
}

// SetColorMode programs the interface pixel format and, for 12 and 16 bit modes, the
// matching colour set table. Every following pixel operation encodes for this mode.
func (d *Driver) SetColorMode(mode ColorMode) (err error) {
	d.mode = mode
	d.format = mode.Format()
	if debug {
		log.Printf("display: color mode %s", mode)
	}
	if err = d.command(n70COLMOD, byte(mode)); err != nil {
		return
	}

	switch mode {
	case Color12Bit:
		err = d.command(n70RGBSET, rgb12Table[:]...)
	case Color16Bit:
		err = d.command(n70RGBSET, rgb16Table[:]...)
	}
	return
}
