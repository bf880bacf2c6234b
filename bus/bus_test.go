package bus

import (
	"bytes"
	"testing"
)

func TestWriteProtectsROMRegion(t *testing.T) {
	b := New()
	b.SetROMSize(0x10)
	for addr := uint16(0); addr < 0x20; addr++ {
		b.Write(addr, 0xAA)
	}
	for addr := uint16(0); addr < 0x10; addr++ {
		if got := b.Read(addr); got != 0 {
			t.Errorf("Read(%#x) = %#x, want 0 (ROM write should be dropped)", addr, got)
		}
	}
	for addr := uint16(0x10); addr < 0x20; addr++ {
		if got := b.Read(addr); got != 0xAA {
			t.Errorf("Read(%#x) = %#x, want 0xAA (RAM write should stick)", addr, got)
		}
	}
}

func TestLoadImageEmptyIsError(t *testing.T) {
	b := New()
	if _, err := b.LoadImage(bytes.NewReader(nil)); err != ErrEmptyImage {
		t.Fatalf("LoadImage(empty) = %v, want ErrEmptyImage", err)
	}
}

func TestLoadImageWritesFromZero(t *testing.T) {
	b := New()
	img := []byte{1, 2, 3, 4}
	n, err := b.LoadImage(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if n != len(img) {
		t.Fatalf("LoadImage returned n=%d, want %d", n, len(img))
	}
	for i, want := range img {
		if got := b.Read(uint16(i)); got != want {
			t.Errorf("Read(%d) = %#x, want %#x", i, got, want)
		}
	}
}

type fakePeripheral struct {
	port byte
	in   byte
}

func (f *fakePeripheral) In(port byte) (byte, bool) {
	if port != f.port {
		return 0, false
	}
	return f.in, true
}

func (f *fakePeripheral) Out(port byte, value byte) bool {
	if port != f.port {
		return false
	}
	f.in = value
	return true
}

func TestIOUnclaimedPortReadsFF(t *testing.T) {
	b := New()
	if got := b.IORead(0x99); got != 0xFF {
		t.Errorf("IORead(unclaimed) = %#x, want 0xFF", got)
	}
}

func TestIOFirstClaimWins(t *testing.T) {
	b := New()
	p1 := &fakePeripheral{port: 0x10, in: 1}
	p2 := &fakePeripheral{port: 0x10, in: 2}
	b.AddPeripheral(p1)
	b.AddPeripheral(p2)
	if got := b.IORead(0x10); got != 1 {
		t.Errorf("IORead = %d, want 1 (first registered peripheral wins)", got)
	}
	b.IOWrite(0x10, 7)
	if p1.in != 7 || p2.in != 2 {
		t.Errorf("IOWrite reached p1=%d p2=%d, want 7,2", p1.in, p2.in)
	}
}
