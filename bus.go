package display

import (
	"errors"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// ErrNoBus is returned when opening a driver without a bus.
var ErrNoBus = errors.New("display: no bus")

// Bus is the connection to the controller.
//
// The driver assumes exclusive access: callers sharing a driver between goroutines
// must serialize every call themselves.
type Bus interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset line to the provided level.
	Reset(gpio.Level) error

	// Command sends a command byte.
	Command(byte) error

	// Data sends data bytes.
	Data(...byte) error

	// ReadRegister selects a register and returns the first byte read back, which by
	// controller convention is a dummy.
	ReadRegister(index byte) (byte, error)

	// ReadData reads one data byte.
	ReadData() (byte, error)
}

// Timer is implemented by buses with configurable strobe timing.
type Timer interface {
	SetTiming(addressSetup, dataSetup time.Duration) error
}
