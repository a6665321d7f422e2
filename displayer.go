package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/BeatGlow/n70display/pixel"
)

// displayer adapts the driver to drivers.Displayer. Pixels outside the display are
// dropped and the first bus error is kept until Display.
type displayer struct {
	d   *Driver
	err error
}

// Displayer returns the driver as a TinyGo display. Every SetPixel is written straight
// to the controller; Display reports the first write error.
func (d *Driver) Displayer() drivers.Displayer {
	return &displayer{d: d}
}

func (p *displayer) Size() (x, y int16) {
	return int16(p.d.Width()), int16(p.d.Height())
}

func (p *displayer) SetPixel(x, y int16, c color.RGBA) {
	if p.err != nil || x < 0 || y < 0 || int(x) >= p.d.Width() || int(y) >= p.d.Height() {
		return
	}
	p.err = p.d.SetPixel(int(x), int(y), pixel.FromColor(c))
}

func (p *displayer) Display() error {
	err := p.err
	p.err = nil
	return err
}

// WriteLine draws proportional text with a TinyGo font, baseline at y. Only glyph
// pixels are written; the background is left as is.
func (d *Driver) WriteLine(f tinyfont.Fonter, x, y int16, text string, c pixel.RGB) error {
	p := &displayer{d: d}
	tinyfont.WriteLine(p, f, x, y, text, c.ToRGBA())
	return p.Display()
}
