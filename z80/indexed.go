package z80

// executeIndexed executes a DD- or FD-prefixed instruction, with reg
// pointing at the CPU's IX or IY field. Only the documented subset of
// opcodes that actually reference the index register or (IX/IY+d) is
// special-cased; anything else is, per the Z80's real behavior, a
// "non-consumed" prefix: the following byte executes as an ordinary
// unprefixed instruction against HL, and the prefix itself costs 4
// extra T-states. DD/FD immediately followed by another DD/FD chains
// (the last prefix before a consuming opcode wins); DD/FD followed by
// CB is the indexed bit-operation form with its own displacement
// ordering, handled by executeIndexedCB.
func (c *CPU) executeIndexed(reg *uint16) uint64 {
	opc := c.fetch8()

	switch opc {
	case 0xCB:
		d := int8(c.fetch8())
		return c.executeIndexedCB(*reg, d)
	case 0xDD:
		return 4 + c.executeIndexed(&c.IX)
	case 0xFD:
		return 4 + c.executeIndexed(&c.IY)
	case 0xED:
		return 4 + c.executeED()
	}

	switch opc {
	case 0x09:
		*reg = c.addHL16(*reg, c.bc())
		return 15
	case 0x19:
		*reg = c.addHL16(*reg, c.de())
		return 15
	case 0x21:
		*reg = c.fetch16()
		return 14
	case 0x22:
		addr := c.fetch16()
		c.writeMem16(addr, *reg)
		c.memptr = addr + 1
		return 20
	case 0x23:
		*reg++
		return 10
	case 0x29:
		*reg = c.addHL16(*reg, *reg)
		return 15
	case 0x2A:
		addr := c.fetch16()
		*reg = c.readMem16(addr)
		c.memptr = addr + 1
		return 20
	case 0x2B:
		*reg--
		return 10
	case 0x34:
		addr := c.indexedAddr(reg)
		c.writeMem(addr, c.inc8(c.readMem(addr)))
		return 23
	case 0x35:
		addr := c.indexedAddr(reg)
		c.writeMem(addr, c.dec8(c.readMem(addr)))
		return 23
	case 0x36:
		addr := c.indexedAddr(reg)
		n := c.fetch8()
		c.writeMem(addr, n)
		return 19
	case 0x39:
		*reg = c.addHL16(*reg, c.SP)
		return 15
	case 0xE1:
		*reg = c.pop16()
		return 14
	case 0xE3:
		v := c.readMem16(c.SP)
		c.writeMem16(c.SP, *reg)
		*reg = v
		c.memptr = v
		return 23
	case 0xE5:
		c.push16(*reg)
		return 15
	case 0xE9:
		c.PC = *reg
		return 8
	case 0xF9:
		c.SP = *reg
		return 10
	}

	_, y, z, _, _ := decompose(opc)
	x := int(opc >> 6)

	if x == 1 && z == 6 && y != 6 { // LD r[y],(IX/IY+d)
		addr := c.indexedAddr(reg)
		c.writeR8(y, c.readMem(addr))
		return 19
	}
	if x == 1 && y == 6 && z != 6 { // LD (IX/IY+d),r[z]
		addr := c.indexedAddr(reg)
		c.writeMem(addr, c.readR8(z))
		return 19
	}
	if x == 2 && z == 6 { // ALU A,(IX/IY+d)
		addr := c.indexedAddr(reg)
		c.alu(y, c.readMem(addr))
		return 19
	}

	// Non-consumed prefix: run opc as an ordinary unprefixed
	// instruction, HL in place of IX/IY, plus the prefix's 4 T-states.
	return 4 + c.dispatchPlain(opc)
}

// indexedAddr fetches the displacement byte following the current
// opcode and computes (reg+d), updating MEMPTR.
func (c *CPU) indexedAddr(reg *uint16) uint16 {
	d := int8(c.fetch8())
	addr := uint16(int32(*reg) + int32(d))
	c.memptr = addr
	return addr
}
