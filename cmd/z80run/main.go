// Command z80run drives the RetroShield Z80 core against a ROM image,
// multiplexing its two UART models over stdio and optionally bridging
// one of them to a real serial device.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajokela/z80-retroshield-emulator/bus"
	"github.com/ajokela/z80-retroshield-emulator/input"
	"github.com/ajokela/z80-retroshield-emulator/sd"
	"github.com/ajokela/z80-retroshield-emulator/uart"
	"github.com/ajokela/z80-retroshield-emulator/z80"
)

var (
	romPath   string
	romSize   uint
	maxCycles uint64
	sdDir     string
	trace     bool
	serialDev string
	baud      uint
)

var rootCmd = &cobra.Command{
	Use:   "z80run",
	Short: "Run a ROM image on the RetroShield Z80 core",
	Long: `z80run loads a ROM image into a 64 KiB address space, wires up the
MC6850 ACIA and Intel 8251 USART models plus the SD-card file peripheral,
and steps the Z80 core until it halts with no more possible input or
--max-cycles is reached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if romPath == "" {
			return fmt.Errorf("--rom is required")
		}

		logger := log.New(os.Stderr, "z80run: ", 0)

		b := bus.New()
		b.SetROMSize(uint16(romSize))

		f, err := os.Open(romPath)
		if err != nil {
			logger.Fatalf("opening ROM %q: %v", romPath, err)
		}
		n, err := b.LoadImage(f)
		f.Close()
		if err != nil {
			logger.Fatalf("loading ROM %q: %v", romPath, err)
		}
		logger.Printf("loaded %d bytes from %s (rom-size=0x%04X)", n, romPath, romSize)

		queue := input.New(input.MinCapacity)
		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()

		acia := uart.NewACIA(queue, out)
		usart := uart.NewUSART8251(queue, out)
		sdPeriph := sd.New(sdDir)

		b.AddPeripheral(acia)
		b.AddPeripheral(usart)
		b.AddPeripheral(sdPeriph)

		cpu := z80.New(b)

		bridge := newSerialBridge(serialDev, uint32(baud), queue, logger)
		if bridge != nil {
			defer bridge.Close()
			acia.Tap(bridge)
			usart.Tap(bridge)
		} else {
			go feedStdin(queue)
		}

		run(cpu, b, queue, usart, logger, trace, maxCycles)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&romPath, "rom", "", "path to the ROM image (required)")
	rootCmd.Flags().UintVar(&romSize, "rom-size", 0x2000, "write-protected ROM size in bytes")
	rootCmd.Flags().Uint64Var(&maxCycles, "max-cycles", 0, "stop after this many T-states (0 = unbounded)")
	rootCmd.Flags().StringVar(&sdDir, "sd-dir", "sdcard", "storage directory backing the SD peripheral")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "log a disassembly line before every executed instruction")
	rootCmd.Flags().StringVar(&serialDev, "serial", "", "bridge UART traffic to this serial device (Linux only)")
	rootCmd.Flags().UintVar(&baud, "baud", 115200, "serial bridge baud rate")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run drives the host loop: step the CPU, optionally trace, and raise
// the 8251's maskable interrupt whenever it has input waiting.
func run(cpu *z80.CPU, b *bus.Bus, queue *input.Queue, usart *uart.USART8251, logger *log.Logger, trace bool, maxCycles uint64) {
	for {
		if maxCycles != 0 && cpu.Cycles() >= maxCycles {
			logger.Printf("stopped: reached max-cycles=%d", maxCycles)
			return
		}
		if trace {
			pc := cpu.RegPC()
			_, mnemonic := z80.Disassemble(b, pc)
			logger.Printf("pc=%04X cyc=%d %s", pc, cpu.Cycles(), mnemonic)
		}

		cpu.Step()

		if usart.IRQPending(cpu.IFF1Set()) {
			cpu.RaiseInterrupt(0xFF)
			usart.MarkIRQAccepted()
		}

		if cpu.IsHalted() && !usart.UsesDevice() && !queue.NonEmpty() {
			logger.Printf("halted at pc=%04X after %d cycles", cpu.RegPC(), cpu.Cycles())
			return
		}
	}
}

// feedStdin is the default input producer: every byte typed at the
// host terminal is pushed to the shared queue, exactly the
// single-producer role spec.md §5 assigns to the front-end.
func feedStdin(queue *input.Queue) {
	r := bufio.NewReader(os.Stdin)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		queue.Push(b)
	}
}
