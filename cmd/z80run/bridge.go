package main

import "io"

// serialBridge mirrors guest UART output to a real serial device and
// feeds bytes read from it into the shared input queue. The Linux
// build backs this with github.com/daedaluz/goserial; every other
// platform gets a stub that refuses -serial outright.
type serialBridge interface {
	io.Writer
	Close() error
}
