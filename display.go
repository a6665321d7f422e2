// Package display drives the 176x208 MC2PA8201-class controller of the Nokia N70
// panel over an 8-bit parallel bus.
//
// The driver is a thin protocol layer: every call programs a controller window and
// streams pixels through the color codec of the active [ColorMode]. Coordinates are
// not validated; out of range windows behave however the controller handles them.
package display

import (
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/n70display/font"
	"github.com/BeatGlow/n70display/pixel"
)

// Panel dimensions in portrait orientation.
const (
	PanelWidth  = 176
	PanelHeight = 208
)

var debug bool

// sleep is replaced in tests.
var sleep = time.Sleep

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Config is the display configuration.
type Config struct {
	// ColorMode selects the pixel depth, defaults to 16-bit.
	ColorMode ColorMode

	// Orientation of the display.
	Orientation Orientation

	// Font used by the text renderer.
	Font font.Size

	// Foreground and Background text colors. Both zero is taken as unset and gives
	// white on black; use SetTextColors after Open for black on black.
	Foreground pixel.RGB
	Background pixel.RGB

	// AddressSetup and DataSetup are the bus setup times in BusClock cycles.
	AddressSetup uint8
	DataSetup    uint8

	// BusClock is the clock the setup times count; defaults to 72MHz.
	BusClock physic.Frequency
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	ColorMode:    Color16Bit,
	Orientation:  Portrait,
	Font:         font.Small,
	Foreground:   pixel.White,
	Background:   pixel.Black,
	AddressSetup: 1,
	DataSetup:    3,
	BusClock:     72 * physic.MegaHertz,
}

// Driver is a display controller instance. It holds the color mode, orientation,
// font and text colors; none of these are reset except by their setters.
type Driver struct {
	bus         Bus
	mode        ColorMode
	format      pixel.Format
	orientation Orientation
	fontSize    font.Size
	font        font.Table
	foreground  pixel.RGB
	background  pixel.RGB
	buf         []byte
}

// Open resets and initializes the controller, then applies the configuration.
func Open(bus Bus, config *Config) (*Driver, error) {
	if bus == nil {
		return nil, ErrNoBus
	}
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	d := &Driver{bus: bus}
	if err := d.init(config); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Driver) init(config *Config) (err error) {
	if config.ColorMode == 0 {
		config.ColorMode = DefaultConfig.ColorMode
	}
	if config.BusClock == 0 {
		config.BusClock = DefaultConfig.BusClock
	}
	if config.Foreground == 0 && config.Background == 0 {
		config.Foreground = DefaultConfig.Foreground
		config.Background = DefaultConfig.Background
	}

	if t, ok := d.bus.(Timer); ok {
		var (
			period       = config.BusClock.Period()
			addressSetup = time.Duration(config.AddressSetup) * period
			dataSetup    = time.Duration(config.DataSetup) * period
		)
		if debug {
			log.Printf("display: bus timing address setup %s, data setup %s at %s", addressSetup, dataSetup, config.BusClock)
		}
		if err = t.SetTiming(addressSetup, dataSetup); err != nil {
			return fmt.Errorf("display: bus timing: %w", err)
		}
	}

	// Reset the device.
	if err = d.bus.Reset(gpio.Low); err != nil {
		return
	}
	sleep(10 * time.Millisecond)
	if err = d.bus.Reset(gpio.High); err != nil {
		return
	}
	sleep(100 * time.Millisecond)

	// Init display
	for _, command := range []byte{
		n70SLPOUT,
		n70INVOFF,
		n70IDMOFF,
		n70NORON,
	} {
		if err = d.command(command); err != nil {
			return
		}
	}
	sleep(125 * time.Millisecond)
	if err = d.command(n70DISPON); err != nil {
		return
	}

	if err = d.SetColorMode(config.ColorMode); err != nil {
		return
	}
	if err = d.SetOrientation(config.Orientation); err != nil {
		return
	}
	d.SetFont(config.Font)
	d.SetTextColors(config.Foreground, config.Background)
	return
}

func (d *Driver) String() string {
	return fmt.Sprintf("N70 %dx%d %s", d.Width(), d.Height(), d.mode)
}

// Close turns the display off and closes the bus.
func (d *Driver) Close() error {
	if err := d.Show(false); err != nil {
		_ = d.bus.Close()
		return err
	}
	return d.bus.Close()
}

// Width is the logical width for the current orientation.
func (d *Driver) Width() int {
	if d.orientation.Landscape() {
		return PanelHeight
	}
	return PanelWidth
}

// Height is the logical height for the current orientation.
func (d *Driver) Height() int {
	if d.orientation.Landscape() {
		return PanelWidth
	}
	return PanelHeight
}

// Bounds is the display bounding box.
func (d *Driver) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width(), d.Height())
}

func (d *Driver) command(cmnd byte, data ...byte) (err error) {
	if err = d.bus.Command(cmnd); err != nil {
		return
	}
	if len(data) > 0 {
		err = d.bus.Data(data...)
	}
	return
}
