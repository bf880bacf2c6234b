package uart

import (
	"io"
	"sync/atomic"

	"github.com/ajokela/z80-retroshield-emulator/input"
)

// 8251 status bits.
const (
	stat8251TxRDY byte = 0x01
	stat8251RxRDY byte = 0x02
	stat8251TxE   byte = 0x04
	stat8251DSR   byte = 0x80
	// statusInit is the fixed baseline the reference firmware polls for:
	// transmitter always ready, DSR always asserted.
	statusInit = stat8251TxRDY | stat8251TxE | stat8251DSR
)

// 8251 ports.
const (
	PortUSARTData    = 0x00
	PortUSARTControl = 0x01
)

// USART8251 emulates an Intel 8251 on ports 0x00 (data) and 0x01
// (control/status). Unlike the ACIA, it folds lowercase ASCII input to
// uppercase on read, matching the firmware it was written against, and
// it tracks whether the guest has ever touched it so the host loop can
// decide whether to drive interrupt-on-input.
type USART8251 struct {
	queue      *input.Queue
	out        io.Writer
	tap        io.Writer
	usesDevice atomic.Bool
	intPending atomic.Bool
	command    byte
}

// NewUSART8251 returns a USART8251 fed by queue, writing guest output
// to out.
func NewUSART8251(queue *input.Queue, out io.Writer) *USART8251 {
	return &USART8251{queue: queue, out: out}
}

// Tap additionally mirrors every byte the guest writes to w, used by
// the front-end's optional hardware serial bridge.
func (u *USART8251) Tap(w io.Writer) { u.tap = w }

// In implements bus.Peripheral.
func (u *USART8251) In(port byte) (byte, bool) {
	switch port {
	case PortUSARTControl:
		u.usesDevice.Store(true)
		status := byte(statusInit)
		if u.queue.NonEmpty() {
			status |= stat8251RxRDY
		}
		return status, true
	case PortUSARTData:
		u.usesDevice.Store(true)
		b, ok := u.queue.Pop()
		if ok {
			u.intPending.Store(false)
			if b >= 'a' && b <= 'z' {
				b = b - 'a' + 'A'
			}
			return b, true
		}
		return 0, true
	}
	return 0, false
}

// Out implements bus.Peripheral.
func (u *USART8251) Out(port byte, value byte) bool {
	switch port {
	case PortUSARTData:
		u.usesDevice.Store(true)
		if u.out != nil {
			u.out.Write([]byte{value})
			if f, ok := u.out.(flusher); ok {
				f.Flush()
			}
		}
		if u.tap != nil {
			u.tap.Write([]byte{value})
		}
		return true
	case PortUSARTControl:
		u.usesDevice.Store(true)
		u.command = value // mode/command sequencing is not interpreted
		return true
	}
	return false
}

// UsesDevice reports whether the guest has touched either 8251 port
// yet. The host's interrupt-on-input policy only applies once this is
// true.
func (u *USART8251) UsesDevice() bool {
	return u.usesDevice.Load()
}

// IRQPending reports whether the host should raise a maskable
// interrupt for pending input: the guest has selected the 8251, input
// is waiting, interrupts are enabled, and no interrupt for the
// current byte has been accepted yet.
func (u *USART8251) IRQPending(iff1 bool) bool {
	return u.usesDevice.Load() && iff1 && !u.intPending.Load() && u.queue.NonEmpty()
}

// MarkIRQAccepted latches that an interrupt was just raised for the
// byte at the head of the queue, so the host does not re-raise before
// the guest drains it. The latch clears automatically the next time
// the data port is read.
func (u *USART8251) MarkIRQAccepted() {
	u.intPending.Store(true)
}
