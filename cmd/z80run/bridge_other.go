//go:build !linux

package main

import (
	"log"

	"github.com/ajokela/z80-retroshield-emulator/input"
)

func newSerialBridge(device string, baud uint32, queue *input.Queue, logger *log.Logger) serialBridge {
	if device == "" {
		return nil
	}
	logger.Fatalf("-serial is only supported on Linux (requested device %q)", device)
	return nil
}
