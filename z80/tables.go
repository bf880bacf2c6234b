package z80

// Opcode decoding follows the dense x/y/z/p/q decomposition recommended
// over a 256-entry function-pointer table: x=opc>>6, y=(opc>>3)&7,
// z=opc&7, p=y>>1, q=y&1. See cases below and opcodes_x*.go.

func decompose(opc byte) (x, y, z, p, q int) {
	x = int(opc >> 6)
	y = int(opc>>3) & 7
	z = int(opc) & 7
	p = y >> 1
	q = y & 1
	return
}

// readR8/writeR8 read or write one of the eight r8 slots {B,C,D,E,H,L,
// (HL),A} addressed by a 0..7 index, against the CPU's main H/L pair.
// Indexed (IX+d)/(IY+d) forms are handled separately in indexed.go
// because they additionally need the fetched displacement byte.

func (c *CPU) readR8(idx int) byte {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readMem(c.hl())
	case 7:
		return c.A
	}
	panic("z80: bad r8 index")
}

func (c *CPU) writeR8(idx int, v byte) {
	switch idx {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.writeMem(c.hl(), v)
	case 7:
		c.A = v
	default:
		panic("z80: bad r8 index")
	}
}

// rp reads/writes one of {BC,DE,HL,SP} by 0..3 index (the p field).
func (c *CPU) readRP(p int) uint16 {
	switch p {
	case 0:
		return c.bc()
	case 1:
		return c.de()
	case 2:
		return c.hl()
	case 3:
		return c.SP
	}
	panic("z80: bad rp index")
}

func (c *CPU) writeRP(p int, v uint16) {
	switch p {
	case 0:
		c.setBC(v)
	case 1:
		c.setDE(v)
	case 2:
		c.setHL(v)
	case 3:
		c.SP = v
	default:
		panic("z80: bad rp index")
	}
}

// rp2 reads/writes one of {BC,DE,HL,AF} by 0..3 index, the PUSH/POP
// register-pair selection used by the x=3 quadrant.
func (c *CPU) readRP2(p int) uint16 {
	if p == 3 {
		return c.af()
	}
	return c.readRP(p)
}

func (c *CPU) writeRP2(p int, v uint16) {
	if p == 3 {
		c.setAF(v)
		return
	}
	c.writeRP(p, v)
}

// cond evaluates one of the eight condition codes {NZ,Z,NC,C,PO,PE,P,M}.
func (c *CPU) cond(y int) bool {
	switch y {
	case 0:
		return !c.flag(flagZ)
	case 1:
		return c.flag(flagZ)
	case 2:
		return !c.flag(flagC)
	case 3:
		return c.flag(flagC)
	case 4:
		return !c.flag(flagP)
	case 5:
		return c.flag(flagP)
	case 6:
		return !c.flag(flagS)
	case 7:
		return c.flag(flagS)
	}
	panic("z80: bad condition index")
}

var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
var r8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
var rpNames = [4]string{"BC", "DE", "HL", "SP"}
var rp2Names = [4]string{"BC", "DE", "HL", "AF"}
var aluNames = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}
