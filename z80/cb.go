package z80

// executeCB executes a CB-prefixed instruction against a main register
// or (HL); PC already points past the CB byte. Returns the T-state
// cost: 8 for registers, 15 for (HL) rotate/shift/RES/SET, 12 for
// BIT n,(HL).
func (c *CPU) executeCB() uint64 {
	opc := c.fetch8()
	x, y, z, _, _ := decompose(opc)

	if z == 6 {
		v := c.readMem(c.hl())
		switch x {
		case 0:
			c.writeMem(c.hl(), c.shiftOp(y, v))
			return 15
		case 1:
			c.memptr = c.hl()
			c.bitTest(y, v, byte(c.memptr>>8))
			return 12
		case 2:
			c.writeMem(c.hl(), v&^(1<<uint(y)))
			return 15
		default:
			c.writeMem(c.hl(), v|1<<uint(y))
			return 15
		}
	}

	v := c.readR8(z)
	switch x {
	case 0:
		c.writeR8(z, c.shiftOp(y, v))
	case 1:
		c.bitTest(y, v, v)
	case 2:
		c.writeR8(z, v&^(1<<uint(y)))
	default:
		c.writeR8(z, v|1<<uint(y))
	}
	return 8
}

// executeIndexedCB executes a DD CB d xx / FD CB d xx instruction. d
// has already been fetched by the caller; base is IX or IY. z selects
// the nominal source register; non-(HL) z values additionally store
// the (documented) result into that register ("undocumented
// dual-write"). All forms cost 23 T-states except BIT n,(IX+d)/(IY+d),
// which costs 20.
func (c *CPU) executeIndexedCB(base uint16, d int8) uint64 {
	opc := c.fetch8()
	x, y, z, _, _ := decompose(opc)
	addr := uint16(int32(base) + int32(d))
	c.memptr = addr

	v := c.readMem(addr)
	var result byte
	switch x {
	case 0:
		result = c.shiftOp(y, v)
	case 1:
		c.bitTest(y, v, byte(addr>>8))
		return 20
	case 2:
		result = v &^ (1 << uint(y))
	default:
		result = v | 1<<uint(y)
	}
	c.writeMem(addr, result)
	if z != 6 {
		c.writeR8(z, result)
	}
	return 23
}

// shiftOp applies one of the eight CB rotate/shift operations {RLC,
// RRC, RL, RR, SLA, SRA, SLL, SRL} and sets S,Z,Y,H=0,X,P,N=0,C.
func (c *CPU) shiftOp(y int, v byte) byte {
	var result byte
	var carry bool
	switch y {
	case 0: // RLC
		carry = v&0x80 != 0
		result = v<<1 | v>>7
	case 1: // RRC
		carry = v&0x01 != 0
		result = v>>1 | v<<7
	case 2: // RL
		carry = v&0x80 != 0
		in := byte(0)
		if c.flag(flagC) {
			in = 1
		}
		result = v<<1 | in
	case 3: // RR
		carry = v&0x01 != 0
		in := byte(0)
		if c.flag(flagC) {
			in = 0x80
		}
		result = v>>1 | in
	case 4: // SLA
		carry = v&0x80 != 0
		result = v << 1
	case 5: // SRA
		carry = v&0x01 != 0
		result = v&0x80 | v>>1
	case 6: // SLL / SL1, undocumented: shifts in a 1 at bit 0
		carry = v&0x80 != 0
		result = v<<1 | 0x01
	default: // SRL
		carry = v&0x01 != 0
		result = v >> 1
	}
	c.setSZ(result)
	c.F &^= flagH | flagN
	c.setFlag(flagP, parity(result))
	c.setFlag(flagC, carry)
	c.setXY(result)
	return result
}

// bitTest implements BIT n,operand. xySource supplies the byte whose
// bits 3,5 feed the undocumented X/Y flags: the operand itself for
// register forms, or MEMPTR's high byte for the (HL) and indexed
// forms.
func (c *CPU) bitTest(n int, operand, xySource byte) {
	set := operand&(1<<uint(n)) != 0
	c.setFlag(flagZ, !set)
	c.setFlag(flagP, !set)
	c.setFlag(flagS, n == 7 && set)
	c.F |= flagH
	c.F &^= flagN

	c.setXY(xySource)
}
