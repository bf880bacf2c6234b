package uart

import (
	"bytes"
	"testing"

	"github.com/ajokela/z80-retroshield-emulator/input"
)

func TestACIAStatusBitsReflectQueue(t *testing.T) {
	q := input.New(input.MinCapacity)
	a := NewACIA(q, &bytes.Buffer{})

	status, _ := a.In(PortACIAControl)
	if status != aciaTDRE {
		t.Fatalf("status = %#x, want TDRE only while queue is empty", status)
	}
	q.Push('A')
	status, _ = a.In(PortACIAControl)
	if status != aciaTDRE|aciaRDRF {
		t.Fatalf("status = %#x, want TDRE|RDRF once input is queued", status)
	}
}

func TestACIADataReadDequeuesUnmodified(t *testing.T) {
	q := input.New(input.MinCapacity)
	a := NewACIA(q, &bytes.Buffer{})
	q.Push('a')
	v, _ := a.In(PortACIAData)
	if v != 'a' {
		t.Fatalf("ACIA data read = %q, want %q (no case folding)", v, 'a')
	}
}

func TestACIADataWriteEmitsToOut(t *testing.T) {
	q := input.New(input.MinCapacity)
	var out bytes.Buffer
	a := NewACIA(q, &out)
	a.Out(PortACIAData, 'A')
	if out.String() != "A" {
		t.Fatalf("out = %q, want %q", out.String(), "A")
	}
}

func TestACIAUnclaimedPort(t *testing.T) {
	a := NewACIA(input.New(input.MinCapacity), &bytes.Buffer{})
	if _, ok := a.In(0x55); ok {
		t.Fatal("In(unclaimed port) returned ok=true")
	}
	if a.Out(0x55, 0) {
		t.Fatal("Out(unclaimed port) returned true")
	}
}
