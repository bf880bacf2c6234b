package z80

// Step executes exactly one instruction, or services a pending
// interrupt, or (while halted) advances the clock by one HALT cycle,
// per §4.5's step() contract. It never blocks and never returns an
// error: all guest-observable anomalies (undefined opcodes, SD/bus
// failures) become in-band state, not Go errors.
func (c *CPU) Step() {
	if c.interruptEligible() {
		c.Cyc += c.acceptInterrupt()
		c.decayIFFDelay()
		return
	}

	if c.Halted {
		c.Cyc += 4
		c.decayIFFDelay()
		return
	}

	c.bumpR()
	opc := c.fetch8()
	c.Cyc += c.dispatch(opc)
	c.decayIFFDelay()
}

// decayIFFDelay advances the EI delay counter by one instruction
// boundary. EI sets IFFDelay to 2 ("just executed"); it reaches 0 only
// after two Step calls have completed, which is what makes interrupts
// accepted no earlier than two steps after EI.
func (c *CPU) decayIFFDelay() {
	if c.IFFDelay > 0 {
		c.IFFDelay--
	}
}

// dispatch routes a freshly-fetched top-level opcode byte to the CB/
// ED/DD/FD prefix handlers or to the plain x/y/z/p/q quadrant
// dispatcher, and returns the instruction's T-state cost.
func (c *CPU) dispatch(opc byte) uint64 {
	switch opc {
	case 0xCB:
		return c.executeCB()
	case 0xED:
		return c.executeED()
	case 0xDD:
		return c.executeIndexed(&c.IX)
	case 0xFD:
		return c.executeIndexed(&c.IY)
	default:
		return c.dispatchPlain(opc)
	}
}

// dispatchPlain executes opc against the main register file, assuming
// opc is not one of the four prefix bytes.
func (c *CPU) dispatchPlain(opc byte) uint64 {
	x, _, _, _, _ := decompose(opc)
	switch x {
	case 0:
		return c.execX0(opc)
	case 1:
		return c.execX1(opc)
	case 2:
		return c.execX2(opc)
	default:
		return c.execX3(opc)
	}
}
