package display

import (
	"log"

	"github.com/BeatGlow/n70display/font"
	"github.com/BeatGlow/n70display/pixel"
)

// SetFont selects one of the built-in font tables.
func (d *Driver) SetFont(size font.Size) {
	d.fontSize = size
	d.font = size.Table()
	if debug {
		log.Printf("display: font %s", size)
	}
}

// SetFontTable selects a custom font table. Glyph widths must be even.
func (d *Driver) SetFontTable(table font.Table) {
	d.font = table
}

// Font returns the active font table.
func (d *Driver) Font() font.Table {
	return d.font
}

// SetTextColors sets the foreground and background colors of the text renderer.
func (d *Driver) SetTextColors(foreground, background pixel.RGB) {
	d.foreground = foreground
	d.background = background
}

// TextColors returns the foreground and background colors.
func (d *Driver) TextColors() (foreground, background pixel.RGB) {
	return d.foreground, d.background
}

// PutChar draws character c with its top left corner at (x, y).
//
// The character must be covered by the font table; nothing is checked.
func (d *Driver) PutChar(c byte, x, y int) error {
	var (
		cols  = d.font.Width()
		rows  = d.font.Height()
		glyph = d.font.Glyph(c)
	)
	if err := d.SetWriteWindow(x, y, x+cols-1, y+rows-1); err != nil {
		return err
	}

	buf := d.buf[:0]
	for _, row := range glyph[:rows] {
		// Two pixels per step, left to right.
		mask := byte(0x80)
		for j := 0; j < cols; j += 2 {
			c0, c1 := d.background, d.background
			if row&mask != 0 {
				c0 = d.foreground
			}
			mask >>= 1
			if row&mask != 0 {
				c1 = d.foreground
			}
			mask >>= 1
			buf = d.format.AppendPair(buf, c0, c1)
		}
	}
	d.buf = buf
	return d.bus.Data(buf...)
}

// PutString draws s left to right starting at (x, y). Nothing is drawn when the font
// does not fit below y; drawing stops before the first character that would cross the
// right edge.
func (d *Driver) PutString(s string, x, y int) error {
	_, err := d.putString(s, x, y)
	return err
}

// PutStringClearEOL is PutString followed by spaces up to the right edge.
func (d *Driver) PutStringClearEOL(s string, x, y int) error {
	x, err := d.putString(s, x, y)
	if err != nil || x < 0 {
		return err
	}
	for cols := d.font.Width(); x+cols <= d.Width(); x += cols {
		if err = d.PutChar(' ', x, y); err != nil {
			return err
		}
	}
	return nil
}

// PutStringCentered draws s horizontally centered on row y, or from the left edge if
// it is wider than the display.
func (d *Driver) PutStringCentered(s string, y int) error {
	var (
		x      int
		length = len(s) * d.font.Width()
	)
	if width := d.Width(); length <= width {
		x = (width - length) / 2
	}
	return d.PutString(s, x, y)
}

// putString returns the x after the last drawn character, or -1 when the row did not fit.
func (d *Driver) putString(s string, x, y int) (int, error) {
	cols, rows := d.font.Width(), d.font.Height()
	if y+rows > d.Height() {
		return -1, nil
	}
	for i := 0; i < len(s); i++ {
		if x+cols > d.Width() {
			break
		}
		if err := d.PutChar(s[i], x, y); err != nil {
			return x, err
		}
		x += cols
	}
	return x, nil
}
