package conn

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Transfer is one command and everything written or read after it.
type Transfer struct {
	Command byte
	Data    []byte
	Read    int
}

// Recorder is a bus that records all traffic instead of driving hardware.
//
// Data written before the first command is recorded against command 0x00.
type Recorder struct {
	Transfers []Transfer
	Resets    []gpio.Level

	// Input is consumed by ReadRegister and ReadData; an exhausted input reads as 0.
	Input []byte

	// Verbose logs every transfer.
	Verbose bool

	AddressSetup time.Duration
	DataSetup    time.Duration
	closed       bool
}

func (r *Recorder) String() string {
	return fmt.Sprintf("recorder (%d transfers)", len(r.Transfers))
}

func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	return r.closed
}

func (r *Recorder) Reset(level gpio.Level) error {
	r.Resets = append(r.Resets, level)
	return nil
}

func (r *Recorder) SetTiming(addressSetup, dataSetup time.Duration) error {
	r.AddressSetup = addressSetup
	r.DataSetup = dataSetup
	return nil
}

func (r *Recorder) Command(cmnd byte) error {
	if r.Verbose {
		log.Printf("recorder: command %#02x", cmnd)
	}
	r.Transfers = append(r.Transfers, Transfer{Command: cmnd})
	return nil
}

func (r *Recorder) Data(data ...byte) error {
	if r.Verbose {
		log.Printf("recorder: %d data bytes", len(data))
	}
	t := r.last()
	t.Data = append(t.Data, data...)
	return nil
}

func (r *Recorder) ReadRegister(index byte) (byte, error) {
	if err := r.Command(index); err != nil {
		return 0, err
	}
	return r.ReadData()
}

func (r *Recorder) ReadData() (byte, error) {
	r.last().Read++
	if len(r.Input) == 0 {
		return 0, nil
	}
	b := r.Input[0]
	r.Input = r.Input[1:]
	return b, nil
}

func (r *Recorder) last() *Transfer {
	if len(r.Transfers) == 0 {
		r.Transfers = append(r.Transfers, Transfer{})
	}
	return &r.Transfers[len(r.Transfers)-1]
}

// Commands returns the recorded command bytes in order.
func (r *Recorder) Commands() []byte {
	out := make([]byte, len(r.Transfers))
	for i, t := range r.Transfers {
		out[i] = t.Command
	}
	return out
}

// Last returns the most recent transfer for the command and whether one exists.
func (r *Recorder) Last(cmnd byte) (Transfer, bool) {
	for i := len(r.Transfers) - 1; i >= 0; i-- {
		if r.Transfers[i].Command == cmnd {
			return r.Transfers[i], true
		}
	}
	return Transfer{}, false
}

// Clear forgets all recorded traffic.
func (r *Recorder) Clear() {
	r.Transfers = r.Transfers[:0]
	r.Resets = r.Resets[:0]
}
