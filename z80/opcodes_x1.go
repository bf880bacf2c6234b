package z80

// execX1 executes one instruction from the x=1 quadrant (0x40-0x7F):
// LD r8,r8' for every combination, with 0x76 singled out as HALT.
func (c *CPU) execX1(opc byte) uint64 {
	_, y, z, _, _ := decompose(opc)

	if y == 6 && z == 6 { // 0x76: HALT
		c.Halted = true
		c.PC-- // re-point PC at the HALT opcode for the duration of the halt
		return 4
	}

	v := c.readR8(z)
	if y == 6 || z == 6 {
		c.writeR8(y, v)
		return 7
	}
	c.writeR8(y, v)
	return 4
}
