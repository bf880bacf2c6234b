package z80

// execX0 executes one instruction from the x=0 quadrant (opcodes
// 0x00-0x3F): NOP, EX AF,AF', DJNZ, JR/JR cc, LD rp,nn, ADD HL,rp,
// LD (BC)/(DE)/(nn),A and reciprocals, INC/DEC rp, INC/DEC r8,
// LD r8,n, the rotate-accumulator group, DAA, CPL, SCF, CCF.
// opc is the already-fetched opcode byte; it returns the T-state cost.
func (c *CPU) execX0(opc byte) uint64 {
	_, y, z, p, q := decompose(opc)

	switch z {
	case 0:
		switch y {
		case 0: // NOP
			return 4
		case 1: // EX AF,AF'
			c.A, c.A2 = c.A2, c.A
			c.F, c.F2 = c.F2, c.F
			return 4
		case 2: // DJNZ d
			d := int8(c.fetch8())
			c.B--
			if c.B != 0 {
				c.PC = uint16(int32(c.PC) + int32(d))
				c.memptr = c.PC
				return 13
			}
			return 8
		case 3: // JR d
			d := int8(c.fetch8())
			c.PC = uint16(int32(c.PC) + int32(d))
			c.memptr = c.PC
			return 12
		default: // JR cc,d  (y = 4..7 -> cc = y-4)
			d := int8(c.fetch8())
			if c.cond(y - 4) {
				c.PC = uint16(int32(c.PC) + int32(d))
				c.memptr = c.PC
				return 12
			}
			return 7
		}

	case 1:
		if q == 0 { // LD rp,nn
			c.writeRP(p, c.fetch16())
			return 10
		}
		// ADD HL,rp
		c.setHL(c.addHL16(c.hl(), c.readRP(p)))
		return 11

	case 2:
		switch {
		case y == 0: // LD (BC),A
			c.writeMem(c.bc(), c.A)
			c.memptr = c.memptr&0xFF00 | uint16(c.A+1)&0xFF
			return 7
		case y == 1: // LD A,(BC)
			c.A = c.readMem(c.bc())
			c.memptr = c.bc() + 1
			return 7
		case y == 2: // LD (DE),A
			c.writeMem(c.de(), c.A)
			c.memptr = c.memptr&0xFF00 | uint16(c.A+1)&0xFF
			return 7
		case y == 3: // LD A,(DE)
			c.A = c.readMem(c.de())
			c.memptr = c.de() + 1
			return 7
		case y == 4: // LD (nn),HL
			addr := c.fetch16()
			c.writeMem16(addr, c.hl())
			c.memptr = addr + 1
			return 16
		case y == 5: // LD HL,(nn)
			addr := c.fetch16()
			c.setHL(c.readMem16(addr))
			c.memptr = addr + 1
			return 16
		case y == 6: // LD (nn),A
			addr := c.fetch16()
			c.writeMem(addr, c.A)
			c.memptr = uint16(c.A)<<8 | (addr+1)&0xFF
			return 13
		default: // LD A,(nn)
			addr := c.fetch16()
			c.A = c.readMem(addr)
			c.memptr = addr + 1
			return 13
		}

	case 3:
		if q == 0 { // INC rp
			c.writeRP(p, c.readRP(p)+1)
			return 6
		}
		c.writeRP(p, c.readRP(p)-1) // DEC rp
		return 6

	case 4: // INC r8[y]
		if y == 6 {
			v := c.readMem(c.hl())
			c.writeMem(c.hl(), c.inc8(v))
			return 11
		}
		c.writeR8(y, c.inc8(c.readR8(y)))
		return 4

	case 5: // DEC r8[y]
		if y == 6 {
			v := c.readMem(c.hl())
			c.writeMem(c.hl(), c.dec8(v))
			return 11
		}
		c.writeR8(y, c.dec8(c.readR8(y)))
		return 4

	case 6: // LD r8[y],n
		n := c.fetch8()
		if y == 6 {
			c.writeMem(c.hl(), n)
			return 10
		}
		c.writeR8(y, n)
		return 7

	case 7: // rotate-accumulator / DAA / CPL / SCF / CCF
		switch y {
		case 0: // RLCA
			carry := c.A&0x80 != 0
			c.A = c.A<<1 | c.A>>7
			c.setFlag(flagC, carry)
			c.F &^= flagH | flagN
			c.setXY(c.A)
			return 4
		case 1: // RRCA
			carry := c.A&0x01 != 0
			c.A = c.A>>1 | c.A<<7
			c.setFlag(flagC, carry)
			c.F &^= flagH | flagN
			c.setXY(c.A)
			return 4
		case 2: // RLA
			carryIn := byte(0)
			if c.flag(flagC) {
				carryIn = 1
			}
			carryOut := c.A&0x80 != 0
			c.A = c.A<<1 | carryIn
			c.setFlag(flagC, carryOut)
			c.F &^= flagH | flagN
			c.setXY(c.A)
			return 4
		case 3: // RRA
			carryIn := byte(0)
			if c.flag(flagC) {
				carryIn = 0x80
			}
			carryOut := c.A&0x01 != 0
			c.A = c.A>>1 | carryIn
			c.setFlag(flagC, carryOut)
			c.F &^= flagH | flagN
			c.setXY(c.A)
			return 4
		case 4: // DAA
			c.daa()
			return 4
		case 5: // CPL
			c.A = ^c.A
			c.F |= flagH | flagN
			c.setXY(c.A)
			return 4
		case 6: // SCF
			c.F &^= flagH | flagN
			c.F |= flagC
			c.setXY(c.A)
			return 4
		default: // CCF
			carry := c.flag(flagC)
			c.setFlag(flagH, carry)
			c.setFlag(flagC, !carry)
			c.F &^= flagN
			c.setXY(c.A)
			return 4
		}
	}
	panic("z80: unreachable execX0")
}
