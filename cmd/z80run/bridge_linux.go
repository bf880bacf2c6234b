//go:build linux

package main

import (
	"log"

	"github.com/ajokela/z80-retroshield-emulator/input"
	"github.com/daedaluz/goserial"
)

// serialBridgeImpl wraps a goserial.Port: reads feed the shared input
// queue on a background goroutine, writes go straight to the device.
type serialBridgeImpl struct {
	port  *goserial.Port
	queue *input.Queue
}

func newSerialBridge(device string, baud uint32, queue *input.Queue, logger *log.Logger) serialBridge {
	if device == "" {
		return nil
	}

	opts := goserial.NewOptions()
	port, err := goserial.Open(device, opts)
	if err != nil {
		logger.Fatalf("opening serial device %q: %v", device, err)
	}

	attrs, err := port.GetAttr()
	if err != nil {
		logger.Fatalf("reading termios for %q: %v", device, err)
	}
	attrs.MakeRaw()
	attrs.SetSpeed(baudFlag(baud))
	if err := port.SetAttr(goserial.TCSANOW, attrs); err != nil {
		logger.Fatalf("configuring %q: %v", device, err)
	}

	b := &serialBridgeImpl{port: port, queue: queue}
	go b.readLoop(logger)
	logger.Printf("serial bridge active on %s at %d baud", device, baud)
	return b
}

func baudFlag(baud uint32) goserial.CFlag {
	switch baud {
	case 9600:
		return goserial.B9600
	case 19200:
		return goserial.B19200
	case 38400:
		return goserial.B38400
	case 57600:
		return goserial.B57600
	case 230400:
		return goserial.B230400
	default:
		return goserial.B115200
	}
}

func (b *serialBridgeImpl) readLoop(logger *log.Logger) {
	buf := make([]byte, 256)
	for {
		n, err := b.port.Read(buf)
		if err != nil {
			logger.Printf("serial bridge read stopped: %v", err)
			return
		}
		for _, c := range buf[:n] {
			b.queue.Push(c)
		}
	}
}

func (b *serialBridgeImpl) Write(p []byte) (int, error) {
	return b.port.Write(p)
}

func (b *serialBridgeImpl) Close() error {
	return b.port.Close()
}
