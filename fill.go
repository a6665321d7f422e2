package display

import "github.com/BeatGlow/n70display/pixel"

// batchSize is the maximum number of bytes handed to the bus at once.
const batchSize = 4096

// Fill floods the window (x0,y0)-(x1,y1) with a single color.
//
// In 12-bit mode pixels travel in pairs, so the window area should be even.
func (d *Driver) Fill(x0, y0, x1, y1 int, c pixel.RGB) error {
	if err := d.SetWriteWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	return d.repeat(d.format.Pattern(c), area(x0, y0, x1, y1))
}

// ClearScreen fills the whole display.
func (d *Driver) ClearScreen(c pixel.RGB) error {
	return d.Fill(0, 0, d.Width()-1, d.Height()-1, c)
}

// repeat streams pattern, one encoding unit, often enough to cover n pixels.
func (d *Driver) repeat(pattern []byte, n int) error {
	per, _ := d.format.Unit()
	units := (n + per - 1) / per
	if units <= 0 {
		return nil
	}

	chunk := d.buffer(min(units, batchSize/len(pattern)) * len(pattern))
	for i := 0; i < len(chunk); i += len(pattern) {
		copy(chunk[i:], pattern)
	}

	perChunk := len(chunk) / len(pattern)
	for units > 0 {
		k := min(units, perChunk)
		if err := d.bus.Data(chunk[:k*len(pattern)]...); err != nil {
			return err
		}
		units -= k
	}
	return nil
}

// FillPixels writes one color per pixel of the window, in raster order. colors must
// hold at least the window area; each is encoded independently.
//
// In 12-bit mode pixels travel in pairs, so the window area should be even.
func (d *Driver) FillPixels(x0, y0, x1, y1 int, colors []pixel.RGB) error {
	if err := d.SetWriteWindow(x0, y0, x1, y1); err != nil {
		return err
	}

	colors = colors[:area(x0, y0, x1, y1)]
	// Even step keeps 12-bit pairs inside one batch.
	step := batchSize / 6 * 2
	for len(colors) > 0 {
		n := min(len(colors), step)
		d.buf = d.format.AppendPixels(d.buf[:0], colors[:n])
		if err := d.bus.Data(d.buf...); err != nil {
			return err
		}
		colors = colors[n:]
	}
	return nil
}

// FillFromBuffer streams pre-encoded bytes into the window without touching the codec.
// data must hold the window area encoded in the active color mode.
func (d *Driver) FillFromBuffer(x0, y0, x1, y1 int, data []byte) error {
	if err := d.SetWriteWindow(x0, y0, x1, y1); err != nil {
		return err
	}

	data = data[:d.format.Size(area(x0, y0, x1, y1))]
	for len(data) > 0 {
		n := min(len(data), batchSize)
		if err := d.bus.Data(data[:n]...); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// SetPixel sets a single pixel.
func (d *Driver) SetPixel(x, y int, c pixel.RGB) error {
	if err := d.SetWriteWindow(x, y, x, y); err != nil {
		return err
	}
	d.buf = d.format.Append(d.buf[:0], c)
	return d.bus.Data(d.buf...)
}

// SetPixel16 sets a single pixel from a 5-6-5 value, regardless of the color mode.
func (d *Driver) SetPixel16(x, y int, c uint16) error {
	if err := d.SetWriteWindow(x, y, x, y); err != nil {
		return err
	}
	return d.bus.Data(byte(c>>8), byte(c))
}

// ReadMemory reads back the window in the controller's native wire format. The bytes
// are not decoded; see [pixel.Format.Decode] and [pixel.RawFrom].
func (d *Driver) ReadMemory(x0, y0, x1, y1 int) ([]byte, error) {
	if err := d.SetReadWindow(x0, y0, x1, y1); err != nil {
		return nil, err
	}
	if _, err := d.bus.ReadData(); err != nil { // dummy
		return nil, err
	}

	data := make([]byte, d.format.Size(area(x0, y0, x1, y1)))
	for i := range data {
		b, err := d.bus.ReadData()
		if err != nil {
			return nil, err
		}
		data[i] = b
	}
	return data, nil
}

// ReadRegister reads n parameter bytes of a register, discarding the dummy byte.
func (d *Driver) ReadRegister(reg byte, n int) ([]byte, error) {
	if _, err := d.bus.ReadRegister(reg); err != nil {
		return nil, err
	}
	data := make([]byte, n)
	for i := range data {
		b, err := d.bus.ReadData()
		if err != nil {
			return nil, err
		}
		data[i] = b
	}
	return data, nil
}

// ReadDisplayID returns the manufacturer, version and module identification bytes.
func (d *Driver) ReadDisplayID() ([]byte, error) {
	return d.ReadRegister(n70RDDID, 3)
}

// buffer returns the scratch buffer resized to n bytes.
func (d *Driver) buffer(n int) []byte {
	if cap(d.buf) < n {
		d.buf = make([]byte, n)
	}
	return d.buf[:n]
}
