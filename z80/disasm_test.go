package z80

import "testing"

type memReader []byte

func (m memReader) Read(addr uint16) byte { return m[addr] }

func TestDisassembleKnownMnemonics(t *testing.T) {
	cases := []struct {
		code []byte
		n    int
		want string
	}{
		{[]byte{0x00}, 1, "NOP"},
		{[]byte{0x76}, 1, "HALT"},
		{[]byte{0x3E, 0x7F}, 2, "LD A,$7F"},
		{[]byte{0x21, 0x34, 0x12}, 3, "LD HL,$1234"},
		{[]byte{0xC3, 0x00, 0x80}, 3, "JP $8000"},
		{[]byte{0xCB, 0x47}, 2, "BIT 0,A"},
		{[]byte{0xED, 0xB0}, 2, "LDIR"},
		{[]byte{0xED, 0xB8}, 2, "LDDR"},
		{[]byte{0xDD, 0x21, 0x34, 0x12}, 4, "LD IX,$1234"},
		{[]byte{0xFD, 0x21, 0x34, 0x12}, 4, "LD IY,$1234"},
		{[]byte{0xDD, 0xCB, 0x05, 0x46}, 4, "BIT 0,(IX+5)"},
		{[]byte{0x18, 0xFE}, 2, "JR $0000"},
	}
	for _, tc := range cases {
		mem := make(memReader, 0x10000)
		copy(mem, tc.code)
		n, text := Disassemble(mem, 0)
		if n != tc.n || text != tc.want {
			t.Errorf("Disassemble(%v) = (%d, %q), want (%d, %q)", tc.code, n, text, tc.n, tc.want)
		}
	}
}

func TestDisassembleLengthIsAlwaysInRange(t *testing.T) {
	mem := make(memReader, 0x10000)
	for i := range mem {
		mem[i] = byte(i*37 + 11)
	}
	for addr := 0; addr < 0x10000; addr++ {
		n, text := Disassemble(mem, uint16(addr))
		if n < 1 || n > 4 {
			t.Fatalf("Disassemble(%#04x) length = %d, want 1..4", addr, n)
		}
		if text == "" {
			t.Fatalf("Disassemble(%#04x) returned empty text", addr)
		}
	}
}

func TestDisassembleCoversAddressSpaceWithoutGapsOrOverlap(t *testing.T) {
	mem := make(memReader, 0x10000)
	for i := range mem {
		mem[i] = byte(i*37 + 11)
	}
	// The walk runs from 0 up to the top of memory. The last instruction
	// may run past 0xFFFF; its operand bytes then wrap onto address 0
	// onward, which the walk has already covered, so they are not counted
	// again.
	var visited [0x10000]bool
	addr := 0
	for steps := 0; addr < 0x10000; steps++ {
		if steps > 0x10000 {
			t.Fatal("walk did not terminate after visiting every address once")
		}
		n, _ := Disassemble(mem, uint16(addr))
		for i := 0; i < n && addr+i < 0x10000; i++ {
			a := addr + i
			if visited[a] {
				t.Fatalf("address %#04x covered more than once", a)
			}
			visited[a] = true
		}
		addr += n
	}
	for a, v := range visited {
		if !v {
			t.Fatalf("address %#04x never covered by any instruction", a)
		}
	}
}

func TestDisassembleNeverPanicsOnTruncatedOperands(t *testing.T) {
	// A prefix byte sitting at the very top of the address space has no
	// room for its operand bytes without wrapping; Disassemble must
	// still return cleanly rather than panicking.
	prefixes := []byte{0xCB, 0xED, 0xDD, 0xFD}
	for _, p := range prefixes {
		mem := make(memReader, 0x10000)
		mem[0xFFFF] = p
		n, text := Disassemble(mem, 0xFFFF)
		if n < 1 {
			t.Fatalf("prefix %#02x at top of memory: n = %d", p, n)
		}
		if text == "" {
			t.Fatalf("prefix %#02x at top of memory: empty text", p)
		}
	}
}
