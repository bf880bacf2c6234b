package z80

// imTable maps the ED IM y field (0..7) to the resulting interrupt
// mode: {0,0,1,2,0,0,1,2}.
var imTable = [8]InterruptMode{IM0, IM0, IM1, IM2, IM0, IM0, IM1, IM2}

// executeED executes an ED-prefixed instruction; PC already points
// past the ED byte. Returns the T-state cost: 8 for the
// undocumented-NOP opcodes, the documented cost otherwise; block
// repeat instructions return 21 when they repeat and 16 when they
// terminate (executeEDBlock picks between the two).
func (c *CPU) executeED() uint64 {
	opc := c.fetch8()
	x, y, z, p, q := decompose(opc)

	switch {
	case x == 1:
		return c.executeEDRegister(y, z, p, q)
	case x == 2 && y >= 4 && z <= 3:
		return c.executeEDBlock(y, z)
	default:
		return 8 // duplicated/undocumented ED opcode: treated as a NOP.
	}
}

func (c *CPU) executeEDRegister(y, z, p, q int) uint64 {
	switch z {
	case 0: // IN r[y],(C)
		v := c.bus.IORead(c.C)
		c.memptr = c.bc() + 1
		c.setSZ(v)
		c.F &^= flagH | flagN
		c.setFlag(flagP, parity(v))
		c.setXY(v)
		if y != 6 {
			c.writeR8(y, v)
		}
		return 12

	case 1: // OUT (C),r[y]
		v := byte(0)
		if y != 6 {
			v = c.readR8(y)
		}
		c.memptr = c.bc() + 1
		c.bus.IOWrite(c.C, v)
		return 12

	case 2: // SBC/ADC HL,rp[p]
		if q == 0 {
			c.setHL(c.sbcHL16(c.hl(), c.readRP(p)))
		} else {
			c.setHL(c.adcHL16(c.hl(), c.readRP(p)))
		}
		return 15

	case 3: // LD (nn),rp[p] / LD rp[p],(nn)
		addr := c.fetch16()
		c.memptr = addr + 1
		if q == 0 {
			c.writeMem16(addr, c.readRP(p))
		} else {
			c.writeRP(p, c.readMem16(addr))
		}
		return 20

	case 4: // NEG
		result, f := subFlags8(0, c.A, false)
		c.A = result
		c.F = f
		return 8

	case 5: // RETN / RETI
		c.PC = c.pop16()
		c.memptr = c.PC
		c.IFF1 = c.IFF2
		return 14

	case 6: // IM y
		c.IM = imTable[y]
		return 8

	default: // z == 7
		switch y {
		case 0: // LD I,A
			c.I = c.A
			return 9
		case 1: // LD R,A
			c.R = c.A
			return 9
		case 2: // LD A,I
			c.A = c.I
			c.setSZ(c.A)
			c.setFlag(flagP, c.IFF2)
			c.F &^= flagH | flagN
			c.setXY(c.A)
			return 9
		case 3: // LD A,R
			c.A = c.R
			c.setSZ(c.A)
			c.setFlag(flagP, c.IFF2)
			c.F &^= flagH | flagN
			c.setXY(c.A)
			return 9
		case 4: // RRD
			c.rrd()
			return 18
		case 5: // RLD
			c.rld()
			return 18
		default: // 6,7: undocumented NOPs
			return 8
		}
	}
}

// rrd/rld rotate a 4-bit nibble between A's low nibble and (HL),
// leaving A's high nibble untouched.
func (c *CPU) rrd() {
	mem := c.readMem(c.hl())
	result := c.A&0xF0 | mem&0x0F
	newMem := c.A<<4 | mem>>4
	c.A = result
	c.writeMem(c.hl(), newMem)
	c.memptr = c.hl() + 1
	c.setSZ(c.A)
	c.setFlag(flagP, parity(c.A))
	c.F &^= flagH | flagN
	c.setXY(c.A)
}

func (c *CPU) rld() {
	mem := c.readMem(c.hl())
	result := c.A&0xF0 | mem>>4
	newMem := mem<<4 | c.A&0x0F
	c.A = result
	c.writeMem(c.hl(), newMem)
	c.memptr = c.hl() + 1
	c.setSZ(c.A)
	c.setFlag(flagP, parity(c.A))
	c.F &^= flagH | flagN
	c.setXY(c.A)
}

// executeEDBlock executes one of LDI/LDD/LDIR/LDDR, CPI/CPD/CPIR/CPDR,
// INI/IND/INIR/INDR, OUTI/OUTD/OTIR/OTDR (y selects I/D/IR/DR variant,
// z selects the LD/CP/IN/OUT family).
func (c *CPU) executeEDBlock(y, z int) uint64 {
	decrement := y == 5 || y == 7
	repeat := y == 6 || y == 7

	var done bool
	switch z {
	case 0:
		done = c.blockLD(decrement)
	case 1:
		done = c.blockCP(decrement)
	case 2:
		done = c.blockIN(decrement)
	default:
		done = c.blockOUT(decrement)
	}

	if repeat && !done {
		c.PC -= 2
		return 21
	}
	return 16
}

func (c *CPU) blockLD(decrement bool) bool {
	v := c.readMem(c.hl())
	c.writeMem(c.de(), v)
	if decrement {
		c.setHL(c.hl() - 1)
		c.setDE(c.de() - 1)
	} else {
		c.setHL(c.hl() + 1)
		c.setDE(c.de() + 1)
	}
	c.setBC(c.bc() - 1)

	n := v + c.A
	c.F &^= flagH | flagN
	c.setFlag(flagP, c.bc() != 0)
	c.setFlag(flagX, n&0x08 != 0)
	c.setFlag(flagY, n&0x02 != 0)
	return c.bc() == 0
}

func (c *CPU) blockCP(decrement bool) bool {
	v := c.readMem(c.hl())
	result := c.A - v
	halfCarry := c.A&0x0F < v&0x0F
	if decrement {
		c.setHL(c.hl() - 1)
		c.memptr--
	} else {
		c.setHL(c.hl() + 1)
		c.memptr++
	}
	c.setBC(c.bc() - 1)

	n := result
	if halfCarry {
		n--
	}
	c.setSZ(result)
	c.setFlag(flagH, halfCarry)
	c.F |= flagN
	c.setFlag(flagP, c.bc() != 0)
	c.setFlag(flagX, n&0x08 != 0)
	c.setFlag(flagY, n&0x02 != 0)
	return c.bc() == 0 || result == 0
}

func (c *CPU) blockIN(decrement bool) bool {
	v := c.bus.IORead(c.C)
	c.writeMem(c.hl(), v)
	c.B--
	if decrement {
		c.setHL(c.hl() - 1)
	} else {
		c.setHL(c.hl() + 1)
	}

	c.setSZ(c.B)
	c.setFlag(flagN, v&0x80 != 0)
	k := int(v) + int(c.L)
	c.setFlag(flagH, k > 0xFF)
	c.setFlag(flagC, k > 0xFF)
	c.setFlag(flagP, parity(byte(k&0x07)^c.B))
	c.setXY(c.B)
	return c.B == 0
}

func (c *CPU) blockOUT(decrement bool) bool {
	v := c.readMem(c.hl())
	if decrement {
		c.setHL(c.hl() - 1)
	} else {
		c.setHL(c.hl() + 1)
	}
	c.B--
	c.bus.IOWrite(c.C, v)

	c.setSZ(c.B)
	c.setFlag(flagN, v&0x80 != 0)
	k := int(v) + int(c.L)
	c.setFlag(flagH, k > 0xFF)
	c.setFlag(flagC, k > 0xFF)
	c.setFlag(flagP, parity(byte(k&0x07)^c.B))
	c.setXY(c.B)
	return c.B == 0
}
