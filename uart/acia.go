// Package uart implements the two UART models the RetroShield firmware
// images expect to find on the I/O bus: a Motorola MC6850 ACIA and an
// Intel 8251 USART, multiplexed by port address.
package uart

import (
	"io"

	"github.com/ajokela/z80-retroshield-emulator/input"
)

// ACIA status bits.
const (
	aciaRDRF byte = 0x01 // receive data register full
	aciaTDRE byte = 0x02 // transmit data register empty
)

// ACIA ports.
const (
	PortACIAControl = 0x80
	PortACIAData    = 0x81
)

// ACIA emulates a Motorola MC6850 on ports 0x80 (control/status) and
// 0x81 (data). The control register is tracked but never interpreted:
// the reference firmware this was built against never reads it back,
// and real hardware quirks around clock-divisor bits are out of scope.
type ACIA struct {
	queue   *input.Queue
	out     io.Writer
	tap     io.Writer
	control byte
}

// NewACIA returns an ACIA fed by queue, writing guest output to out.
func NewACIA(queue *input.Queue, out io.Writer) *ACIA {
	return &ACIA{queue: queue, out: out}
}

// Tap additionally mirrors every byte the guest writes to w, used by
// the front-end's optional hardware serial bridge.
func (a *ACIA) Tap(w io.Writer) { a.tap = w }

// In implements bus.Peripheral.
func (a *ACIA) In(port byte) (byte, bool) {
	switch port {
	case PortACIAControl:
		status := aciaTDRE
		if a.queue.NonEmpty() {
			status |= aciaRDRF
		}
		return status, true
	case PortACIAData:
		if b, ok := a.queue.Pop(); ok {
			return b, true
		}
		return 0, true
	}
	return 0, false
}

// Out implements bus.Peripheral.
func (a *ACIA) Out(port byte, value byte) bool {
	switch port {
	case PortACIAControl:
		a.control = value
		return true
	case PortACIAData:
		if a.out != nil {
			a.out.Write([]byte{value})
			if f, ok := a.out.(flusher); ok {
				f.Flush()
			}
		}
		if a.tap != nil {
			a.tap.Write([]byte{value})
		}
		return true
	}
	return false
}

type flusher interface {
	Flush() error
}
