package display

import "log"

// Orientation of the panel.
type Orientation uint8

// Supported orientations.
const (
	Portrait Orientation = iota
	PortraitReversed
	Landscape
	LandscapeReversed
)

func (o Orientation) String() string {
	switch o {
	case PortraitReversed:
		return "portrait reversed"
	case Landscape:
		return "landscape"
	case LandscapeReversed:
		return "landscape reversed"
	default:
		return "portrait"
	}
}

// Landscape reports whether rows and columns are exchanged.
func (o Orientation) Landscape() bool {
	return o == Landscape || o == LandscapeReversed
}

func (o Orientation) madctl() byte {
	switch o {
	case PortraitReversed:
		return n70ColumnAddressOrder | n70PageAddressOrder
	case Landscape:
		return n70PageColumnOrder | n70ColumnAddressOrder
	case LandscapeReversed:
		return n70PageColumnOrder | n70PageAddressOrder
	default:
		return 0
	}
}

// Orientation returns the active orientation.
func (d *Driver) Orientation() Orientation {
	return d.orientation
}

// SetOrientation programs the memory access control register. The controller maps
// windows onto the panel accordingly; only Width and Height change on the driver side.
func (d *Driver) SetOrientation(orientation Orientation) error {
	d.orientation = orientation & 3
	madctl := d.orientation.madctl()
	if debug {
		log.Printf("display: madctl %s -> %#02x", d.orientation, madctl)
	}
	return d.command(n70MADCTL, madctl)
}

// SetWindow sets the inclusive column range x0..x1 and page range y0..y1.
func (d *Driver) SetWindow(x0, y0, x1, y1 int) (err error) {
	if err = d.command(n70CASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return
	}
	return d.command(n70PASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
}

// SetWriteWindow sets the window and starts a memory write. Data bytes that follow
// fill the window in raster order.
func (d *Driver) SetWriteWindow(x0, y0, x1, y1 int) error {
	if err := d.SetWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	return d.command(n70RAMWR)
}

// SetReadWindow sets the window and starts a memory read. The first byte read after
// this is a dummy.
func (d *Driver) SetReadWindow(x0, y0, x1, y1 int) error {
	if err := d.SetWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	return d.command(n70RAMRD)
}

func area(x0, y0, x1, y1 int) int {
	return (x1 - x0 + 1) * (y1 - y0 + 1)
}
