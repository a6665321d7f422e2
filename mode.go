package display

import "time"

// Gamma curve selection for the gamma set command.
type Gamma uint8

// Gamma curves.
const (
	Gamma1 Gamma = 0x01
	Gamma2 Gamma = 0x02
	Gamma3 Gamma = 0x04
	Gamma4 Gamma = 0x08
)

// TearingMode selects which blanking periods the tearing effect line signals.
type TearingMode uint8

// Tearing effect modes.
const (
	TearingVBlank  TearingMode = 0x00
	TearingVHBlank TearingMode = 0x01
)

// Show toggles the display on or off.
func (d *Driver) Show(show bool) error {
	if show {
		return d.command(n70DISPON)
	}
	return d.command(n70DISPOFF)
}

// SleepIn enters sleep mode.
func (d *Driver) SleepIn() error {
	return d.command(n70SLPIN)
}

// SleepOut leaves sleep mode and waits until the controller accepts commands again.
func (d *Driver) SleepOut() error {
	if err := d.command(n70SLPOUT); err != nil {
		return err
	}
	sleep(120 * time.Millisecond)
	return nil
}

// Sleep turns the display off and enters sleep mode.
func (d *Driver) Sleep() (err error) {
	if err = d.Show(false); err != nil {
		return
	}
	if err = d.SleepIn(); err != nil {
		return
	}
	sleep(5 * time.Millisecond)
	return
}

// Wakeup leaves sleep mode and turns the display on.
func (d *Driver) Wakeup() (err error) {
	if err = d.SleepOut(); err != nil {
		return
	}
	if err = d.Show(true); err != nil {
		return
	}
	sleep(5 * time.Millisecond)
	return
}

// IdleMode toggles the reduced color idle mode.
func (d *Driver) IdleMode(on bool) error {
	if on {
		return d.command(n70IDMON)
	}
	return d.command(n70IDMOFF)
}

// Invert toggles display inversion.
func (d *Driver) Invert(on bool) error {
	if on {
		return d.command(n70INVON)
	}
	return d.command(n70INVOFF)
}

// NormalMode leaves partial mode.
func (d *Driver) NormalMode() error {
	return d.command(n70NORON)
}

// PartialMode enters partial mode; only the partial area is displayed.
func (d *Driver) PartialMode() error {
	return d.command(n70PTLON)
}

// PartialArea sets the rows y0..y1 displayed in partial mode.
func (d *Driver) PartialArea(y0, y1 int) error {
	return d.command(n70PTLAR, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
}

// SetGamma selects a gamma curve.
func (d *Driver) SetGamma(gamma Gamma) error {
	return d.command(n70GAMSET, byte(gamma))
}

// TearingEffectOn enables the tearing effect output line.
func (d *Driver) TearingEffectOn(mode TearingMode) error {
	return d.command(n70TEON, byte(mode))
}

// TearingEffectOff disables the tearing effect output line.
func (d *Driver) TearingEffectOff() error {
	return d.command(n70TEOFF)
}

// ScrollArea defines the vertical scroll region: top fixed rows, followed by height
// scrolling rows; the rest of the physical panel is the bottom fixed area.
func (d *Driver) ScrollArea(top, height int) error {
	bottom := PanelHeight - height - top
	return d.command(n70VSCRDEF,
		byte(top>>8), byte(top),
		byte(height>>8), byte(height),
		byte(bottom>>8), byte(bottom))
}

// SetScrollPosition sets the first row of the scroll region.
func (d *Driver) SetScrollPosition(pos int) error {
	return d.command(n70VSCRSADD, byte(pos>>8), byte(pos))
}
