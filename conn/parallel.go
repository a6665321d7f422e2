package conn

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// ErrPin is returned when a required GPIO pin cannot be resolved.
var ErrPin = errors.New("conn: GPIO pin is invalid")

// ParallelConfig describes an 8-bit 8080-style bus wired to GPIO pins.
type ParallelConfig struct {
	// Data pins DB0 to DB7.
	Data [8]string

	// RS selects command (low) or data (high).
	RS string

	// WR is the active low write strobe.
	WR string

	// RD is the active low read strobe.
	RD string

	// CS is the active low chip select. Leave empty when tied low.
	CS string

	// Reset is the active low controller reset.
	Reset string
}

// DefaultParallelConfig are the default pin assignments.
var DefaultParallelConfig = ParallelConfig{
	Data:  [8]string{"GPIO5", "GPIO6", "GPIO12", "GPIO13", "GPIO16", "GPIO17", "GPIO20", "GPIO21"},
	RS:    "GPIO24",
	WR:    "GPIO23",
	RD:    "GPIO22",
	CS:    "GPIO8",
	Reset: "GPIO25",
}

// Parallel is a bit-banged 8080 bus.
type Parallel struct {
	data         [8]gpio.PinIO
	rs           gpio.PinIO
	rsLevel      gpio.Level
	wr           gpio.PinIO
	rd           gpio.PinIO
	cs           gpio.PinIO
	reset        gpio.PinIO
	reading      bool
	addressSetup time.Duration
	dataSetup    time.Duration
}

// OpenParallel resolves the configured pins by name and opens the bus.
func OpenParallel(config *ParallelConfig) (*Parallel, error) {
	if config == nil {
		config = new(ParallelConfig)
		*config = DefaultParallelConfig
	}

	var (
		data [8]gpio.PinIO
		err  error
	)
	for i, name := range config.Data {
		if data[i], err = pinByName(fmt.Sprintf("DB%d", i), name); err != nil {
			return nil, err
		}
	}
	rs, err := pinByName("RS", config.RS)
	if err != nil {
		return nil, err
	}
	wr, err := pinByName("WR", config.WR)
	if err != nil {
		return nil, err
	}
	rd, err := pinByName("RD", config.RD)
	if err != nil {
		return nil, err
	}
	reset, err := pinByName("reset", config.Reset)
	if err != nil {
		return nil, err
	}
	var cs gpio.PinIO
	if config.CS != "" {
		if cs, err = pinByName("CS", config.CS); err != nil {
			return nil, err
		}
	}
	return NewParallel(data, rs, wr, rd, cs, reset)
}

func pinByName(role, name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil || p == gpio.INVALID {
		return nil, fmt.Errorf("%w: %s pin %q", ErrPin, role, name)
	}
	return p, nil
}

// NewParallel opens a bus on already resolved pins. The chip select may be nil.
func NewParallel(data [8]gpio.PinIO, rs, wr, rd, cs, reset gpio.PinIO) (*Parallel, error) {
	for i, p := range data {
		if p == nil {
			return nil, fmt.Errorf("%w: DB%d", ErrPin, i)
		}
	}
	for _, p := range []gpio.PinIO{rs, wr, rd, reset} {
		if p == nil {
			return nil, ErrPin
		}
	}

	c := &Parallel{
		data:    data,
		rs:      rs,
		rsLevel: gpio.High,
		wr:      wr,
		rd:      rd,
		cs:      cs,
		reset:   reset,
	}

	// Idle: strobes and select released, data lines driven.
	for _, p := range []gpio.PinIO{rs, wr, rd, reset} {
		if err := p.Out(gpio.High); err != nil {
			return nil, err
		}
	}
	if err := c.updateCS(gpio.High); err != nil {
		return nil, err
	}
	for _, p := range data {
		if err := p.Out(gpio.Low); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Parallel) String() string {
	return fmt.Sprintf("8080 parallel bus DB0=%s RS=%s WR=%s RD=%s", c.data[0], c.rs, c.wr, c.rd)
}

// Close releases the chip select.
func (c *Parallel) Close() error {
	return c.updateCS(gpio.High)
}

func (c *Parallel) Reset(level gpio.Level) error {
	return c.reset.Out(level)
}

// SetTiming sets the address and data setup times observed around each strobe.
func (c *Parallel) SetTiming(addressSetup, dataSetup time.Duration) error {
	c.addressSetup = addressSetup
	c.dataSetup = dataSetup
	return nil
}

func (c *Parallel) Command(cmnd byte) error {
	return c.write(gpio.Low, cmnd)
}

func (c *Parallel) Data(data ...byte) (err error) {
	for _, b := range data {
		if err = c.write(gpio.High, b); err != nil {
			return
		}
	}
	return
}

// ReadRegister selects a register and returns the first byte the controller sends back.
func (c *Parallel) ReadRegister(index byte) (byte, error) {
	if err := c.Command(index); err != nil {
		return 0, err
	}
	return c.read()
}

func (c *Parallel) ReadData() (byte, error) {
	return c.read()
}

func (c *Parallel) updateRS(level gpio.Level) error {
	if c.rsLevel != level {
		if err := c.rs.Out(level); err != nil {
			return err
		}
		c.rsLevel = level
	}
	return nil
}

func (c *Parallel) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

func (c *Parallel) write(rs gpio.Level, b byte) (err error) {
	if err = c.updateRS(rs); err != nil {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	for i, p := range c.data {
		if err = p.Out(gpio.Level(b&(1<<uint(i)) != 0)); err != nil {
			return
		}
	}
	c.reading = false
	spin(c.addressSetup)
	if err = c.wr.Out(gpio.Low); err != nil {
		return
	}
	spin(c.dataSetup)
	if err = c.wr.Out(gpio.High); err != nil {
		return
	}
	return c.updateCS(gpio.High)
}

func (c *Parallel) read() (b byte, err error) {
	if err = c.updateRS(gpio.High); err != nil {
		return
	}
	if !c.reading {
		for _, p := range c.data {
			if err = p.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
				return
			}
		}
		c.reading = true
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	spin(c.addressSetup)
	if err = c.rd.Out(gpio.Low); err != nil {
		return
	}
	spin(c.dataSetup)
	for i, p := range c.data {
		if p.Read() == gpio.High {
			b |= 1 << uint(i)
		}
	}
	if err = c.rd.Out(gpio.High); err != nil {
		return
	}
	err = c.updateCS(gpio.High)
	return
}

// spin busy-waits for d.
func spin(d time.Duration) {
	if d <= 0 {
		return
	}
	for start := time.Now(); time.Since(start) < d; {
	}
}
