// Package bus implements the 64 KiB memory map and the 8-bit I/O port
// fabric that a Z80 core is wired against.
package bus

import (
	"errors"
	"io"
)

// MemSize is the size of the Z80's byte-addressable memory space.
const MemSize = 0x10000

// ErrEmptyImage is returned by LoadImage when the reader produced no bytes.
var ErrEmptyImage = errors.New("bus: rom image is empty")

// Peripheral is an I/O port device. A peripheral is asked about every
// port access in registration order; it reports whether it claims the
// port via the ok return value.
type Peripheral interface {
	// In handles a port read. ok is false if this peripheral does not
	// answer for port.
	In(port byte) (value byte, ok bool)
	// Out handles a port write. ok is false if this peripheral does not
	// answer for port.
	Out(port byte, value byte) (ok bool)
}

// Bus is the Z80 memory and I/O fabric: 64 KiB of flat memory with an
// optionally write-protected ROM region at the bottom of the address
// space, plus a small registry of port-mapped peripherals.
type Bus struct {
	mem     [MemSize]byte
	romSize uint16

	peripherals []Peripheral
}

// New returns a Bus with the default RetroShield ROM size (8 KiB).
func New() *Bus {
	return &Bus{romSize: 0x2000}
}

// Read returns the byte at addr. Reads are unconditional.
func (b *Bus) Read(addr uint16) byte {
	return b.mem[addr]
}

// Write stores value at addr unless addr falls inside the protected ROM
// region, in which case the write is silently dropped.
func (b *Bus) Write(addr uint16, value byte) {
	if addr >= b.romSize {
		b.mem[addr] = value
	}
}

// SetROMSize configures the size of the write-protected region
// starting at address 0. A size of 0 makes the whole address space
// writable.
func (b *Bus) SetROMSize(size uint16) {
	b.romSize = size
}

// ROMSize returns the current write-protected region size.
func (b *Bus) ROMSize() uint16 {
	return b.romSize
}

// LoadImage copies up to MemSize bytes from r into memory starting at
// address 0, bypassing ROM protection. It fails if no bytes were read.
func (b *Bus) LoadImage(r io.Reader) (int, error) {
	n, err := io.ReadFull(r, b.mem[:])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return n, err
	}
	if n == 0 {
		return 0, ErrEmptyImage
	}
	return n, nil
}

// AddPeripheral registers a port-mapped device. Peripherals are
// consulted in registration order; the first one that claims a port
// wins.
func (b *Bus) AddPeripheral(p Peripheral) {
	b.peripherals = append(b.peripherals, p)
}

// IORead reads from an 8-bit I/O port. Ports unclaimed by any
// peripheral read as 0xFF.
func (b *Bus) IORead(port byte) byte {
	for _, p := range b.peripherals {
		if v, ok := p.In(port); ok {
			return v
		}
	}
	return 0xFF
}

// IOWrite writes to an 8-bit I/O port. Writes to unclaimed ports are
// ignored.
func (b *Bus) IOWrite(port byte, value byte) {
	for _, p := range b.peripherals {
		if p.Out(port, value) {
			return
		}
	}
}
